package utils

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tcgmarket/marketplace/backend/models"
	"github.com/tcgmarket/marketplace/internal/domain/apperr"
)

// ParseBody decodes the JSON body into dst. An empty body leaves dst untouched.
func ParseBody(c *fiber.Ctx, dst interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(dst); err != nil {
		return &apperr.ValidationError{Field: "body", Message: "invalid JSON body"}
	}
	return nil
}

// QueryID reads a positive int64 query parameter.
func QueryID(c *fiber.Ctx, name string) (int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, &apperr.ValidationError{Field: name, Message: name + " is required"}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &apperr.ValidationError{Field: name, Message: name + " must be a positive integer"}
	}
	return id, nil
}

// ParseItemRef collects cardId/deckId from the JSON body, falling back to
// the query string, and requires exactly one of them.
func ParseItemRef(c *fiber.Ctx) (models.ItemRef, error) {
	var ref models.ItemRef
	if err := ParseBody(c, &ref); err != nil {
		return ref, err
	}
	if ref.CardID == nil && ref.DeckID == nil {
		if err := c.QueryParser(&ref); err != nil {
			return ref, &apperr.ValidationError{Field: "query", Message: "cardId and deckId must be integers"}
		}
	}
	if err := ValidateItemRef(ref); err != nil {
		return ref, err
	}
	return ref, nil
}

func ValidateItemRef(ref models.ItemRef) error {
	switch {
	case ref.CardID == nil && ref.DeckID == nil:
		return &apperr.ValidationError{Field: "cardId", Message: "a card id or a deck id is required"}
	case ref.CardID != nil && ref.DeckID != nil:
		return &apperr.ValidationError{Field: "cardId", Message: "provide either a card id or a deck id, not both"}
	}
	return nil
}

// ValidateAddCard checks the fields AddCard cannot default.
func ValidateAddCard(req *models.AddCardRequest) error {
	var errs []error
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, &apperr.ValidationError{Field: "name", Message: "name is required"})
	}
	if req.Price == nil {
		errs = append(errs, &apperr.ValidationError{Field: "price", Message: "price is required"})
	}
	if req.Quantity == nil {
		errs = append(errs, &apperr.ValidationError{Field: "quantity", Message: "quantity is required"})
	}
	return errors.Join(errs...)
}

// ValidationDetails flattens one or more joined validation errors into a
// field -> message map for the error envelope.
func ValidationDetails(err error) map[string]string {
	details := map[string]string{}
	var walk func(error)
	walk = func(err error) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				walk(e)
			}
			return
		}
		var verr *apperr.ValidationError
		if errors.As(err, &verr) && verr.Field != "" {
			details[verr.Field] = verr.Message
		}
	}
	walk(err)
	if len(details) == 0 {
		return nil
	}
	return details
}
