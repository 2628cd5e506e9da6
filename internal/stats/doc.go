// Package stats matches upcoming matchups against past games with a similar gap in
// winning percentage or efficiency and summarizes how the winners of those games won.
//
// Everything here is a pure function of its inputs. Data retrieval and caching live in
// the data package.
package stats
