// Package services contains domain services that coordinate operations
// spanning multiple aggregates.
//
// The only service here is the Dispatcher, which implements the assignment
// protocol: binding one order to one delivery staff member. The mutation
// touches both aggregates, so it cannot live on either of them; the
// dispatcher applies the paired writes and the calling command handler
// commits them as a single unit of work.
package services
