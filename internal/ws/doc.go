// Package ws implements the WebSocket hub for the fleetsense dashboard.
//
// Hub manages a set of connected clients and pushes the panel status to all
// of them when a monitoring cycle completes. The cycle loop calls
// Hub.CycleCompleted after each cycle; there is no polling interval.
//
// New(panel) creates a Hub.
// Hub.Run(ctx) delivers the pushes — blocks until ctx is cancelled, then
// closes all active connections.
// Hub.CycleCompleted signals a finished cycle; it never blocks, and signals
// arriving while a push is pending coalesce into one.
// Hub.ServeHTTP upgrades an HTTP connection to WebSocket and sends a status
// snapshot on connect.
//
// Message format sent to clients:
//
//	{
//	  "event": "status",        // "status" on connect, "cycle" on pushes
//	  "data":  { /* same schema as GET /api/v1/status */ }
//	}
//
// The upgrader accepts all origins. Apply CORS restrictions at the reverse
// proxy level. The endpoint is mounted at /ws/stream by the binary.
package ws
