// Package server exposes a Glaze toast controller to browser clients over
// a websocket.
//
// Sequencing stays on the server: each websocket session is a
// display.Surface, so the lifecycle state machine in package display runs
// server-side and streams prepare/transition frames to the client, which
// only animates and acknowledges. Inbound frames let the client raise
// toast requests and dismissals of its own.
//
// One client at a time acts as the controller's display driver; a newly
// connected client replaces the previous one (last writer wins), and a
// disconnect unregisters the driver so pending requests queue until the
// next client mounts.
package server
