// Package loader implements the remote load path: fetch a
// configuration document by locator, cache the parsed result, and hand
// the groups to the resolution builder.
//
// # Caching
//
// Each Loader owns its cache, keyed by locator string. A locator is
// fetched at most once; concurrent loads of the same locator share a
// single in-flight transport call via singleflight. Reset clears the
// cache for tests.
//
// # Errors
//
// Failures distinguish between the two fatal conditions:
//
//	groups, err := l.Load(ctx, locator, nil)
//	var le *loader.LoadError
//	switch {
//	case errors.Is(err, resolve.ErrHostNotCapable):
//	    // environment precondition failed, no transport attempted
//	case errors.As(err, &le):
//	    // transport or parse failed; le.Locator names the document
//	}
//
// Unresolved timelines are never errors; they are reported on the
// returned Groups.
package loader
