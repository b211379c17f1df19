package models

// Identity is a point-in-time snapshot of the signed-in user. It is copied
// into records (Resource.CreatedBy) and never dereferenced later.
type Identity struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	Email       string `json:"email" yaml:"email"`
	AvatarURL   string `json:"avatarUrl,omitempty" yaml:"avatarUrl,omitempty"`
}

// Clone returns a heap copy of id, or nil for nil.
func (id *Identity) Clone() *Identity {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
