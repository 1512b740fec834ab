// Package state holds AkshRail's presentation state: which of the six
// sections is on screen.
//
// # Model
//
// Navigation is a single value that is always exactly one Section. It starts
// at Home and changes only through Navigate, which both the sidebar and the
// Dashboard quick actions call. There is no terminal state; any section can
// move to any other.
//
//	Home ⇄ Dashboard ⇄ Upload ⇄ Search ⇄ Analytics ⇄ About
//	          │  "Upload New Document"      ↑
//	          └─→ Upload                    │
//	          └─ "Review Pending Documents" ┘
//
// # Concurrency
//
// Navigation is owned by the Bubble Tea model and only touched from Update,
// which runs on a single goroutine. It carries no lock.
package state
