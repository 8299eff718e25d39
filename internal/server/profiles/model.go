package profiles

// Profile is an account plus its notification preferences. PasswordHash
// is a bcrypt hash; the plaintext never touches storage. Timezone holds
// the signed UTC offset in hours as a string, which is what clients send.
type Profile struct {
	Email        string
	PasswordHash []byte
	Phone        string
	Carrier      string
	Method       string
	Timezone     string
	Time         string
}
