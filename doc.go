// Package goentity provides:
//
//   - Declarative exposures: which attribute to read, how to rename it, whether to nest it,
//     whether to compute it, and whether to emit it at all (Entity/Exposure/Condition)
//   - Representations pairing one object with an options context (Representation/Result)
//   - Ordered output mappings that keep declaration order through JSON and YAML encoding (Hash)
//
// Design policy:
//   - Keep the declaration and representation API in the root package; builder sugar lives in dsl/,
//     YAML catalogs in config/ and the CLI under cmd/goentity.
//   - Declaration errors fail fast with typed errors carrying stable codes; serialization never
//     fails because of a nil object, a missing attribute or missing options.
//   - Entities are built once (typically at package init) and are safe for concurrent use afterwards.
//
// Typical usage:
//
//	user := goentity.NewEntity("User")
//	_ = user.Expose([]string{"name", "email"}, goentity.ExposeOpt{}, nil)
//	_ = user.Expose([]string{"friends"}, goentity.ExposeOpt{Using: user}, nil)
//	_ = user.Expose([]string{"secret"}, goentity.ExposeOpt{If: goentity.Flags(map[string]any{"admin": true})}, nil)
//
//	res, err := user.Represent(users, goentity.Options{"admin": false})
//	out := res.Serialize(nil) // []*goentity.Hash for a slice, *goentity.Hash otherwise
//	b, err := json.Marshal(out)
package goentity
