// internal/handlers/address/address_handler.go
package address

import (
	"net/http"

	"lucky-backoffice/internal/pkg/response"
	"lucky-backoffice/internal/service/address"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	resolver address.Resolver
}

func NewAddressHandler(resolver address.Resolver) *AddressHandler {
	return &AddressHandler{
		resolver: resolver,
	}
}

// GetProvinces lists every known province
func (h *AddressHandler) GetProvinces(c *gin.Context) {
	result, err := h.resolver.Provinces(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "address dataset unavailable", err)
		return
	}
	response.Success(c, http.StatusOK, "provinces retrieved", result)
}

// GetDistricts lists districts of a province. ?province=
func (h *AddressHandler) GetDistricts(c *gin.Context) {
	result, err := h.resolver.Districts(c.Request.Context(), c.Query("province"))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "address dataset unavailable", err)
		return
	}
	response.Success(c, http.StatusOK, "districts retrieved", result)
}

// GetSubdistricts lists subdistricts under a province and district.
// ?province=&district=
func (h *AddressHandler) GetSubdistricts(c *gin.Context) {
	result, err := h.resolver.Subdistricts(c.Request.Context(), c.Query("province"), c.Query("district"))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "address dataset unavailable", err)
		return
	}
	response.Success(c, http.StatusOK, "subdistricts retrieved", result)
}

// GetZipCode resolves a full triple to its zip code. Returns an empty string
// when the triple matches nothing. ?province=&district=&subdistrict=
func (h *AddressHandler) GetZipCode(c *gin.Context) {
	result, err := h.resolver.ZipCode(
		c.Request.Context(),
		c.Query("province"), c.Query("district"), c.Query("subdistrict"),
	)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "address dataset unavailable", err)
		return
	}
	response.Success(c, http.StatusOK, "zip code resolved", gin.H{"zipcode": result})
}

// LookupZip returns every place carrying the given zip code. ?zip=
func (h *AddressHandler) LookupZip(c *gin.Context) {
	result, err := h.resolver.LookupZip(c.Request.Context(), c.Query("zip"))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "address dataset unavailable", err)
		return
	}
	response.Success(c, http.StatusOK, "places retrieved", result)
}
