package devices

// Device is a registered push token for an account. A token may move
// between accounts; registration upserts on the token value.
type Device struct {
	ID    string
	Email string
	Token string
}
