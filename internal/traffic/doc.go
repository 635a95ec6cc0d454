// Package traffic derives congestion, accident and route summaries from an
// upstream traffic response. Every function here is pure.
package traffic
