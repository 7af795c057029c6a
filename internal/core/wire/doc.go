// Package wire implements the feed wire codec.
//
// The feed protocol is line-free and length-free: a feed server writes
// its full encoded sighting list on accept and closes the connection.
// The payload grammar is:
//
//	payload := "" | record ("." record)*
//	record  := timestamp ":" brand ":" color
//
// Field values must not contain '.' or ':'; no escaping is performed.
// That constraint binds the data producer, not the codec.
package wire
