// Package feed implements the CarFlow feed server.
//
// A feed server holds an in-memory, append-only list of car sightings.
// The producer appends new sightings at a configured pace; the listener
// writes the full encoded list to every accepted connection and closes
// it. The server never reads from clients.
package feed
