// Package event provides the immutable value objects that identify what occurred:
// Type, a named identity compared by name, and Event, an instance of a Type carrying
// an opaque payload together with an ID and creation timestamp.
//
// # Event Types
//
// Event types are declared once, usually at package level, and compared by name:
//
//	var UserLogin = event.MustType("USER_LOGIN")
//
//	t, err := event.NewType(name) // returns event.ErrInvalidArgument for ""
//
// Because Type is a comparable value, it can be used directly as a map key or in
// switch statements. Two independently created types with the same name are equal.
//
// # Events
//
// Events are created fresh for every dispatch:
//
//	evt := event.New(UserLogin, LoginPayload{UserID: "42"})
//
//	evt.Type()      // UserLogin
//	evt.Payload()   // LoginPayload{UserID: "42"}
//	evt.ID()        // auto-generated UUID
//	evt.CreatedAt() // time.Now() at creation
//
// Equal compares type and payload only, so two events describing the same
// occurrence are equal even though their IDs differ.
//
// # Context Metadata
//
// Dispatchers attach event metadata to the context passed to observers:
//
//	ctx = event.WithMeta(ctx, evt)
//
//	event.IDFrom(ctx)   // evt.ID()
//	event.TypeFrom(ctx) // "USER_LOGIN"
//	event.TimeFrom(ctx) // evt.CreatedAt()
package event
