package errors

import "net/http"

// Validation errors
var (
	ErrValidation = New(
		"VALIDATION_ERROR",
		"Request validation failed",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = New(
		"INVALID_DATE_RANGE",
		"End date must not be before start date",
		http.StatusBadRequest,
	)

	ErrDayOutOfRange = New(
		"DAY_OUT_OF_RANGE",
		"Day date is outside of the itinerary dates",
		http.StatusBadRequest,
	)

	ErrRateLimited = New(
		"RATE_LIMITED",
		"Too many requests",
		http.StatusTooManyRequests,
	)
)

// Not found errors
var (
	ErrBusinessNotFound = New(
		"BUSINESS_NOT_FOUND",
		"Business not found",
		http.StatusNotFound,
	)

	ErrCategoryNotFound = New(
		"CATEGORY_NOT_FOUND",
		"Category not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrClaimNotFound = New(
		"CLAIM_REQUEST_NOT_FOUND",
		"Claim request not found",
		http.StatusNotFound,
	)

	ErrItineraryNotFound = New(
		"ITINERARY_NOT_FOUND",
		"Itinerary not found",
		http.StatusNotFound,
	)

	ErrDayNotFound = New(
		"ITINERARY_DAY_NOT_FOUND",
		"Itinerary day not found",
		http.StatusNotFound,
	)

	ErrItemNotFound = New(
		"ITINERARY_ITEM_NOT_FOUND",
		"Itinerary item not found",
		http.StatusNotFound,
	)

	ErrCollaboratorNotFound = New(
		"COLLABORATOR_NOT_FOUND",
		"Collaborator not found",
		http.StatusNotFound,
	)

	ErrBookingNotFound = New(
		"TRANSPORT_BOOKING_NOT_FOUND",
		"Transport booking not found",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Route not found",
		http.StatusNotFound,
	)
)

// State conflicts. Reported as 400 like the rest of the client errors.
var (
	ErrClaimNotPending = New(
		"CLAIM_NOT_PENDING",
		"Claim request has already been resolved",
		http.StatusBadRequest,
	)

	ErrClaimAlreadyPending = New(
		"CLAIM_ALREADY_PENDING",
		"Business already has a pending claim request",
		http.StatusBadRequest,
	)

	ErrBusinessAlreadyClaimed = New(
		"BUSINESS_ALREADY_CLAIMED",
		"Business has already been claimed",
		http.StatusBadRequest,
	)

	ErrCollaboratorExists = New(
		"COLLABORATOR_EXISTS",
		"Collaborator with this email already exists on the itinerary",
		http.StatusBadRequest,
	)

	ErrInvalidStatusTransition = New(
		"INVALID_STATUS_TRANSITION",
		"Status transition is not allowed",
		http.StatusBadRequest,
	)

	ErrCategoryExists = New(
		"CATEGORY_EXISTS",
		"Category with this name already exists",
		http.StatusBadRequest,
	)

	ErrUserExists = New(
		"USER_EXISTS",
		"User with this username or email already exists",
		http.StatusBadRequest,
	)
)

// Internal errors
var (
	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
