// Package toast implements the admission and sequencing controller for
// Glaze toast notifications.
//
// Toast requests can arrive from anywhere in an application - event
// handlers, background work, remote clients - but only one toast is ever
// visible at a time. The Controller decides, for each incoming request,
// whether it is displayed now, queued behind the visible toast, or dropped.
//
// # Admission Rules
//
// A request is admitted immediately only when no toast is visible or
// animating, the throttle window since the last admission has elapsed, and
// a display driver is registered. Otherwise it is queued (bounded, FIFO) or
// silently dropped once the queue is full. Blank messages are rejected at
// every entry point. Nothing in this package ever returns an error to the
// caller: a failed toast must never break the host application.
//
// # No Global State
//
// There is no package-level controller. Construct one Controller at your
// composition root and inject it wherever toasts are raised:
//
//	ctrl := toast.NewController()
//
//	// presentation side, on mount / unmount:
//	ctrl.SetDriver(driver)
//	defer ctrl.SetDriver(nil)
//
//	// anywhere in the application:
//	ctrl.Success("Changes saved!")
//	ctrl.Request("3 items removed", toast.KindInfo, toast.Options{
//	    DisplayDuration: 2 * time.Second,
//	})
//
// # Display Drivers
//
// The controller's only dependency on rendering is the Driver interface:
// something that can visually present one toast and later retract it,
// reporting retraction completion exactly once. The reference driver is
// the lifecycle state machine in package display; remote presentations
// (package server) reuse the same machine over a websocket surface.
//
// # Observability
//
// Admission outcomes are reported through the Observer interface. Package
// observe provides Prometheus and OpenTelemetry implementations; combine
// several with Observers.
package toast
