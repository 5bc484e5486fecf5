// Package watch streams engine events to websocket spectators.
//
// A Hub keeps one client set per game id. Attach subscribes the hub to an
// engine's event bus; every event is encoded as a JSON Message and fanned
// out to the spectators of that game. Spectators are read-only: messages
// they send are discarded.
package watch
