// Package seed holds the fixture rows loaded by the admin endpoints and the
// seed CLI.
package seed

import "github.com/jfarje/usell-backend/internal/model"

func CareerNames() []string {
	return []string{
		"Administración",
		"Contabilidad",
		"Economía",
		"Marketing",
		"Negocios Internacionales",
		"Comunicación",
		"Derecho",
		"Arquitectura",
		"Ingeniería Civil",
		"Ingeniería Industrial",
		"Ingeniería de Sistemas",
		"Psicología",
	}
}

func Categories() []model.Category {
	return []model.Category{
		{
			Name:        "Libros",
			Description: "En esta categoría podrás encontrar diversos libros.",
			ImageURL:    "https://firebasestorage.googleapis.com/v0/b/u-sell-app.appspot.com/o/categoryImages%2FLibros.png?alt=media&token=7674f1bf-a685-45f5-b5a4-53bb021b7c45",
		},
		{
			Name:        "Útiles",
			Description: "En esta categoría podrás encontrar útiles para tus estudios.",
			ImageURL:    "https://firebasestorage.googleapis.com/v0/b/u-sell-app.appspot.com/o/categoryImages%2FUtiles.png?alt=media&token=613eb19b-c331-4a8c-ad8f-3d9846dcecca",
		},
		{
			Name:        "Ropa",
			Description: "En esta categoría podrás ropa, como batas.",
			ImageURL:    "https://firebasestorage.googleapis.com/v0/b/u-sell-app.appspot.com/o/categoryImages%2FRopa.png?alt=media&token=6bbe08da-961c-4583-b383-614010156c15",
		},
	}
}
