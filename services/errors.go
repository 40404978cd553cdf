package services

// ServiceError is an expected service outcome with a fixed message.
type ServiceError string

func (e ServiceError) Error() string { return string(e) }

const (
	ErrInvitationNotFound ServiceError = "invitation not found"
	ErrSlugTaken          ServiceError = "an invitation for this couple already exists"
)

// ValidationError reports a missing or malformed input field.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrBrideNamesRequired ValidationError = "brideNames is required"
	ErrGroomNamesRequired ValidationError = "groomNames is required"
	ErrDateRequired       ValidationError = "date is required"
	ErrVenueRequired      ValidationError = "venue is required"
	ErrTemplateUnknown    ValidationError = "templateId is not a known template"
	ErrNoPhotos           ValidationError = "at least one photo is required"
	ErrTooManyPhotos      ValidationError = "too many photos"
	ErrNameRequired       ValidationError = "name is required"
	ErrMessageRequired    ValidationError = "message is required"
)
