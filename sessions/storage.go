package sessions

// Storage is the volatile key/value area owned by one browser tab.
// Values are opaque strings; the session helper stores JSON blobs in them.
type Storage interface {
	// Get returns the value stored under key. ok is false when nothing is stored.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value. On error the
	// previous value must be left untouched.
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}
