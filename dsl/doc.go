// Package dsl provides fluent declaration sugar for goentity entities.
//
// Overview
//   - Builder API: Entity(name).Expose(names...) followed by per-exposure steps
//     (As/Using/UsingSelf/If/Unless/IfFlags/UnlessFlags/From/Meta/Compute), then Build()/MustBuild().
//   - Inheritance: Extend(parent, name) starts a builder whose exposures layer over the parent's.
//   - Declarations are applied in order at Build; the first declaration error is returned and
//     the remaining steps are not applied.
//
// Example
//
//	user := dsl.Entity("User").
//	    Expose("name", "email").
//	    Expose("friends").UsingSelf().
//	    Expose("nickname").As("handle").
//	    Expose("secret").IfFlags(map[string]any{"admin": true}).
//	    Expose("greeting").Compute(func(obj any, opts goentity.Options) any { return "hi" }).
//	    MustBuild()
//
//	res, _ := user.Represent(users, nil)
//	_ = res.Serialize(nil)
package dsl
