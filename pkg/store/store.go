// Package store is the durable key→string record store the diary core sits
// on. Reads never fail (missing key reads as absent); writes report success
// so callers can react to quota/disk problems without crashing.
package store

type RecordStore interface {
	Read(key string) (string, bool)
	Write(key, value string) bool
}
