package validator

import (
	"fmt"
	"strings"

	"github.com/mentorlink/chat-sync/internal/model"
)

const maxContentLength = 500

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateTextMessage(partnerID, content string) error {
	if strings.TrimSpace(partnerID) == "" {
		return fmt.Errorf("partner id is required")
	}

	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	return nil
}

func (v *Validator) ValidateMediaMessage(partnerID string, mediaType model.MediaType, size int, caption string) error {
	if strings.TrimSpace(partnerID) == "" {
		return fmt.Errorf("partner id is required")
	}

	switch mediaType {
	case model.MediaImage, model.MediaVoice:
	default:
		return fmt.Errorf("media type '%s' is not supported", mediaType)
	}

	if size == 0 {
		return fmt.Errorf("media payload is empty")
	}

	if len([]rune(caption)) > maxContentLength {
		return fmt.Errorf("caption exceeds maximum length of %d characters", maxContentLength)
	}

	return nil
}
