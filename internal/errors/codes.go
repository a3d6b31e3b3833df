package errors

import "net/http"

// Code represents a stable machine-readable error code
type Code string

// Infrastructure error codes
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeAlreadyExists   Code = "ALREADY_EXISTS"
	CodeInternal        Code = "INTERNAL"
	CodeUnavailable     Code = "UNAVAILABLE"
)

// Game rule error codes
const (
	CodeInvalidSlot         Code = "INVALID_SLOT"
	CodeSlotFull            Code = "SLOT_FULL"
	CodeCardNotOwned        Code = "CARD_NOT_OWNED"
	CodeCardNotFound        Code = "CARD_NOT_FOUND"
	CodeInvalidTarget       Code = "INVALID_TARGET"
	CodeNoAttackPower       Code = "NO_ATTACK_POWER"
	CodeInvalidPhase        Code = "INVALID_PHASE"
	CodeConflict            Code = "CONFLICT"
	CodeInsufficientCatalog Code = "INSUFFICIENT_CATALOG"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Hint returns a human-readable remediation hint for the code.
// Rendering is the transport layer's job; the hint is stable text it can
// pass through or localize.
func (c Code) Hint() string {
	switch c {
	case CodeInvalidSlot:
		return "use one of the defined slot types"
	case CodeSlotFull:
		return "unequip a card or upgrade this slot"
	case CodeCardNotOwned:
		return "the card must be in this game's inventory"
	case CodeCardNotFound:
		return "check the card id against the catalog"
	case CodeInvalidTarget:
		return "pick a card currently in the tavern pool"
	case CodeNoAttackPower:
		return "equip at least one hp card before attacking"
	case CodeInvalidPhase:
		return "this operation is not legal in the game's current phase"
	case CodeConflict:
		return "reload the game state and retry"
	case CodeInsufficientCatalog:
		return "the catalog has too few eligible cards to refill the tavern"
	case CodeNotFound:
		return "the requested resource does not exist"
	default:
		return ""
	}
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidArgument, CodeInvalidSlot, CodeInvalidTarget, CodeNoAttackPower:
		return http.StatusBadRequest
	case CodeNotFound, CodeCardNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists, CodeConflict:
		return http.StatusConflict
	case CodeSlotFull, CodeInvalidPhase, CodeInsufficientCatalog:
		return http.StatusPreconditionFailed
	case CodeCardNotOwned:
		return http.StatusForbidden
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
