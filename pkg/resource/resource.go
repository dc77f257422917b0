// Package resource provides Laravel-style API Resource transformers.
//
// Define a Resource to control exactly what JSON shape your API returns:
//
//	type UserResource struct{}
//	func (UserResource) ToArray(u models.User) resource.Map {
//	    return resource.Map{
//	        "id":    u.ID,
//	        "name":  u.FullName,
//	        "email": u.Email,
//	    }
//	}
//
// Respond:
//
//	response.Data(w, resource.One(UserResource{}, user))
//	response.Data(w, resource.CollectionOf(UserResource{}, users))
package resource

// Map is a convenient alias for the output of ToArray.
type Map = map[string]interface{}

// Transformer converts one model instance into its public Map shape.
type Transformer[T any] interface {
	ToArray(v T) Map
}

// One transforms a single model.
func One[T any](t Transformer[T], v T) Map {
	return t.ToArray(v)
}

// CollectionOf transforms a slice of models. The result is never nil, so an
// empty collection serialises as [] rather than null.
func CollectionOf[T any](t Transformer[T], items []T) []Map {
	out := make([]Map, len(items))
	for i, v := range items {
		out[i] = t.ToArray(v)
	}
	return out
}
