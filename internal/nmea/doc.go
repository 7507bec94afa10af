package nmea

// Package nmea implements the GGA side of NMEA 0183 as needed by a
// simulated receiver:
// - Render a Fix as a checksummed GGA sentence
// - Compute the XOR checksum of a payload
// - Validate a raw sentence against the GGA grammar with a diagnosed
//   rejection reason
