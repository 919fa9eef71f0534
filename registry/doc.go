// Package registry owns the id managers of live template instances.
//
// Open gives every instance a prefix minted from its template name (panel0,
// panel1, ...) and a Manager using that prefix, which mints panel1_0,
// panel1_1, ... so that instances panel1 and panel11 never share an id. Close
// disposes the Manager and returns the prefix for reuse by the next instance
// of the same template. The Service is safe for concurrent use; the Manager of
// a single session is not.
package registry
