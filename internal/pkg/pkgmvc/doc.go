// Package pkgmvc contains the dispatch error model shared by the router and
// the error strategies.
//
// A request that fails is described by an Event: an error kind tag, the
// error that was returned, a result slot and a response slot. Listeners
// attached to an EventManager inspect the event in priority order and may
// install a ViewModel as the result, which a Renderer then turns into HTML or
// JSON. A listener that fully handles the error clears the tag so the
// remaining listeners leave the event alone.
//
// Tests of the dispatch error pipeline (this package and exception) use
// testify require and assert. The other packages use plain testing with
// t.Fatalf.
package pkgmvc
