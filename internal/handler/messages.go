package handler

// User-facing Spanish texts. The mobile clients match on these strings, so
// they are kept verbatim; machine-readable codes travel next to them in the
// error envelope.
const (
	msgStudentNotFound      = "Usuario no encontrado."
	msgStudentDeleted       = "Usuario eliminado con éxito."
	msgStudentRegistered    = "Usuario registrado satisfactoriamente."
	msgAlreadyRegistered    = "Usuario ya registrado."
	msgStudentHasActivity   = "El usuario tiene publicaciones, compras o favoritos asociados."
	msgStudentNotFoundShort = "Estudiante no encontrado"

	msgCareerNotFound   = "Carrera no encontrada."
	msgCategoryNotFound = "Categoría no encontrada."
	msgCategoryMissing  = "La categoría no existe."

	msgPostPublished   = "Publicación registrada satisfactoriamente."
	msgPostUnavailable = "La publicación a la que quieres acceder no está disponible."
	msgNegativePrice   = "El precio no puede ser negativo."

	msgPurchaseDone = "¡Felicitaciones!&sepEl artículo ha sido comprado con éxito. Ahora debes ponerte en contacto con el vendedor para que puedan acordar el lugar y la fecha de entrega. No olvides que puedes encontrar esta compra en tu historial para consultar los datos del vendedor y poder calificar la compra."

	msgWishAdded     = "Publicación agregada a favoritos."
	msgWishRemoved   = "Publicación eliminada de favoritos."
	msgWishNotFound  = "Favorito no encontrado."
	msgAlreadyWished = "La publicación ya está en tus favoritos."

	msgCareersCreated    = "carreras creadas"
	msgCategoriesCreated = "categorias creadas"

	msgInvalidID     = "Identificador inválido."
	msgInvalidBody   = "Cuerpo de la petición inválido."
	msgMissingFields = "Faltan campos obligatorios o son inválidos."
	msgInternalError = "Error interno del servidor."
)
