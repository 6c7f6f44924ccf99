package hubsdk

// VerifyInviteResponse describes what a code would grant, shown on the
// pre-signup landing page.
type VerifyInviteResponse struct {
	Code string `json:"code"`
	Role string `json:"role"`
}

// RedeemInviteRequest consumes a code for the authenticated profile.
type RedeemInviteRequest struct {
	Code        string `json:"code"`
	DisplayName string `json:"display_name,omitempty"`
}

// RedeemInviteResponse reports the role granted by a successful redemption.
type RedeemInviteResponse struct {
	Role string `json:"role"`
}

// CreateInviteRequest mints a new invite code. ExpiresAt is a Unix
// timestamp; zero means the server default of seven days.
type CreateInviteRequest struct {
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
}

// InviteResponse is a single invite code as the admin panel sees it.
type InviteResponse struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Role       string `json:"role"`
	ExpiresAt  int64  `json:"expires_at"`
	UsedBy     string `json:"used_by,omitempty"`
	UsedByName string `json:"used_by_name,omitempty"`
	CreatedBy  string `json:"created_by"`
	CreatedAt  int64  `json:"created_at"`
}

// ListInvitesResponse wraps the admin invite listing.
type ListInvitesResponse struct {
	Invites []InviteResponse `json:"invites"`
}

// ProfileResponse is a profile as returned by /v1/me and the admin user
// listing.
type ProfileResponse struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

// ListProfilesResponse wraps the admin user listing.
type ListProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}

// UpdateRoleRequest changes a profile's role directly.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// PhotoResponse is gallery metadata for one photo.
type PhotoResponse struct {
	ID         string   `json:"id"`
	URL        string   `json:"url"`
	Title      string   `json:"title"`
	UploadedBy string   `json:"uploaded_by"`
	Tags       []string `json:"tags"`
	Width      int      `json:"width,omitempty"`
	Height     int      `json:"height,omitempty"`
	CreatedAt  int64    `json:"created_at"`
}

// ListPhotosResponse wraps the gallery listing.
type ListPhotosResponse struct {
	Photos []PhotoResponse `json:"photos"`
}

// AddPhotoRequest records a new photo. The image itself must already be
// uploaded to external storage.
type AddPhotoRequest struct {
	URL    string   `json:"url"`
	Title  string   `json:"title"`
	Tags   []string `json:"tags,omitempty"`
	Width  int      `json:"width,omitempty"`
	Height int      `json:"height,omitempty"`
}

// UpdatePhotoTagsRequest replaces a photo's tag list.
type UpdatePhotoTagsRequest struct {
	Tags []string `json:"tags"`
}

// RegistryItemResponse is one registry item with fulfillment progress.
type RegistryItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Current  int    `json:"current"`
	Target   int    `json:"target"`
	Category string `json:"category"`
}

// ListRegistryResponse wraps the registry listing.
type ListRegistryResponse struct {
	Items []RegistryItemResponse `json:"items"`
}

// UpdateRegistryItemRequest sets an item's fulfilled count.
type UpdateRegistryItemRequest struct {
	Current int `json:"current"`
}

// BootstrapResponse carries the freshly seeded codes. This is the only
// time codes leave the server unprompted; the caller must deliver them
// out of band.
type BootstrapResponse struct {
	Invites []InviteResponse `json:"invites"`
}

// CallbackResponse is the result of the auth-code exchange flow.
type CallbackResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   int64           `json:"expires_at"`
	Profile     ProfileResponse `json:"profile"`
	// GrantedRole is set when a pending invite code was redeemed during
	// the callback.
	GrantedRole string `json:"granted_role,omitempty"`
}

// HealthResponse reports liveness or readiness.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks breaks readiness down by dependency.
type HealthChecks struct {
	Database string `json:"database"`
}

// ErrorResponse is the wire shape of every API error.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
