// Package server implements the HTTP and WebSocket surface of lvlviz.
//
// REST endpoints start and stop runs and report state; the WebSocket
// hub streams every published frame to connected visualizers. The hub
// implements the step sink interfaces, so to the engines the network
// is just another renderer.
package server
