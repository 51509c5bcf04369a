// Package errors defines the closed error taxonomy produced by the BlackRoad
// request pipeline and consumed by every resource API. All failures surface as
// a *Error carrying an ErrorCode; callers match on codes via errors.Is with the
// exported sentinels, or inspect fields after errors.As. Import as apiErrors to
// avoid clashing with the standard library.
package errors
