package apiclient

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"bookit-web/config"
)

// Operation names one backend call. It doubles as the metrics and log label.
type Operation string

const (
	OpListRooms      Operation = "rooms.list"
	OpGetRoom        Operation = "rooms.get"
	OpCreateRoom     Operation = "rooms.create"
	OpUpdateRoom     Operation = "rooms.update"
	OpDeleteRoom     Operation = "rooms.delete"
	OpAvailableRooms Operation = "rooms.available"

	OpListAmenities  Operation = "amenities.list"
	OpGetAmenity     Operation = "amenities.get"
	OpCreateAmenity  Operation = "amenities.create"
	OpUpdateAmenity  Operation = "amenities.update"
	OpDeleteAmenity  Operation = "amenities.delete"
	OpManagerProfile Operation = "manager.profile"

	OpSignUp Operation = "auth.signUp"
	OpLogin  Operation = "auth.login"
	OpLogout Operation = "auth.logout"

	OpListBookings   Operation = "bookings.list"
	OpGetBooking     Operation = "bookings.get"
	OpCreateBooking  Operation = "bookings.create"
	OpUpdateBooking  Operation = "bookings.update"
	OpDeleteBooking  Operation = "bookings.delete"
	OpBookingsByUser Operation = "bookings.byUser"
	OpBookingsByRoom Operation = "bookings.byRoom"

	OpListUsers   Operation = "users.list"
	OpGetUser     Operation = "users.get"
	OpUpdateUser  Operation = "users.update"
	OpDeleteUser  Operation = "users.delete"
	OpUserProfile Operation = "users.profile"

	OpUserCredits         Operation = "credits.user"
	OpResetManagerCredits Operation = "credits.reset"
)

// Endpoint is an HTTP method plus a path relative to the API base URL.
// Paths may carry {name} placeholders.
type Endpoint struct {
	Method string
	Path   string
}

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// Expand substitutes every {name} placeholder with the path-escaped value
// from params. A placeholder without a non-empty value is an error.
func (e Endpoint) Expand(params map[string]string) (string, error) {
	var missing []string
	path := placeholderRe.ReplaceAllStringFunc(e.Path, func(m string) string {
		key := m[1 : len(m)-1]
		v, ok := params[key]
		if !ok || v == "" {
			missing = append(missing, key)
			return m
		}
		return url.PathEscape(v)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%s %s: missing path parameter %s", e.Method, e.Path, strings.Join(missing, ", "))
	}
	return path, nil
}

// Endpoints maps each operation to where it lives on the backend.
type Endpoints map[Operation]Endpoint

// EndpointsFor returns the preset selected by cfg.EndpointStyle.
func EndpointsFor(cfg config.APIConfig) (Endpoints, error) {
	switch cfg.EndpointStyle {
	case "", config.EndpointStyleAdmin:
		return AdminEndpoints(cfg.AdminPrefix, cfg.ManagerPrefix), nil
	case config.EndpointStyleREST:
		return RESTEndpoints(), nil
	default:
		return nil, fmt.Errorf("unknown endpoint style %q", cfg.EndpointStyle)
	}
}

// AdminEndpoints is the admin dashboard's endpoint set: room and amenity CRUD
// under adminPrefix and the profile under managerPrefix.
func AdminEndpoints(adminPrefix, managerPrefix string) Endpoints {
	eps := sharedEndpoints()
	eps[OpListRooms] = Endpoint{http.MethodGet, adminPrefix + "/getAllRoom"}
	eps[OpGetRoom] = Endpoint{http.MethodGet, adminPrefix + "/getRoomById/{id}"}
	eps[OpCreateRoom] = Endpoint{http.MethodPost, adminPrefix + "/createRoom"}
	eps[OpUpdateRoom] = Endpoint{http.MethodPut, adminPrefix + "/updateRoom"}
	eps[OpDeleteRoom] = Endpoint{http.MethodDelete, adminPrefix + "/rooms/{id}"}

	eps[OpListAmenities] = Endpoint{http.MethodGet, adminPrefix + "/getAllAmenities"}
	eps[OpGetAmenity] = Endpoint{http.MethodGet, adminPrefix + "/getAmenitieById/{id}"}
	eps[OpCreateAmenity] = Endpoint{http.MethodPost, adminPrefix + "/addAmenitie"}
	eps[OpUpdateAmenity] = Endpoint{http.MethodPut, adminPrefix + "/updateAmenitie"}
	eps[OpDeleteAmenity] = Endpoint{http.MethodDelete, adminPrefix + "/amenities/{id}"}

	eps[OpManagerProfile] = Endpoint{http.MethodGet, managerPrefix + "/profile"}
	return eps
}

// RESTEndpoints is the resource-style endpoint set.
func RESTEndpoints() Endpoints {
	eps := sharedEndpoints()
	eps[OpListRooms] = Endpoint{http.MethodGet, "/rooms"}
	eps[OpGetRoom] = Endpoint{http.MethodGet, "/rooms/{id}"}
	eps[OpCreateRoom] = Endpoint{http.MethodPost, "/rooms"}
	eps[OpUpdateRoom] = Endpoint{http.MethodPut, "/rooms/{id}"}
	eps[OpDeleteRoom] = Endpoint{http.MethodDelete, "/rooms/{id}"}

	eps[OpListAmenities] = Endpoint{http.MethodGet, "/amenities"}
	eps[OpGetAmenity] = Endpoint{http.MethodGet, "/amenities/{id}"}
	eps[OpCreateAmenity] = Endpoint{http.MethodPost, "/amenities"}
	eps[OpUpdateAmenity] = Endpoint{http.MethodPut, "/amenities/{id}"}
	eps[OpDeleteAmenity] = Endpoint{http.MethodDelete, "/amenities/{id}"}

	eps[OpManagerProfile] = Endpoint{http.MethodGet, "/users/profile"}
	return eps
}

func sharedEndpoints() Endpoints {
	return Endpoints{
		OpAvailableRooms: {http.MethodGet, "/rooms/available"},

		OpSignUp: {http.MethodPost, "/auth/signUp"},
		OpLogin:  {http.MethodPost, "/auth/login"},
		OpLogout: {http.MethodPost, "/auth/logout"},

		OpListBookings:   {http.MethodGet, "/bookings"},
		OpGetBooking:     {http.MethodGet, "/bookings/{id}"},
		OpCreateBooking:  {http.MethodPost, "/bookings"},
		OpUpdateBooking:  {http.MethodPut, "/bookings/{id}"},
		OpDeleteBooking:  {http.MethodDelete, "/bookings/{id}"},
		OpBookingsByUser: {http.MethodGet, "/bookings/user/{userId}"},
		OpBookingsByRoom: {http.MethodGet, "/bookings/room/{roomId}"},

		OpListUsers:   {http.MethodGet, "/users"},
		OpGetUser:     {http.MethodGet, "/users/{id}"},
		OpUpdateUser:  {http.MethodPut, "/users/{id}"},
		OpDeleteUser:  {http.MethodDelete, "/users/{id}"},
		OpUserProfile: {http.MethodGet, "/users/profile"},

		OpUserCredits:         {http.MethodGet, "/credits/user/{userId}"},
		OpResetManagerCredits: {http.MethodPost, "/credits/reset"},
	}
}
