package handlers

import (
	"net/http"
	"time"

	"food-vendor-api/middleware"
	"food-vendor-api/models"
	"food-vendor-api/services"

	"github.com/gin-gonic/gin"
)

type OfferRequest struct {
	OfferType     models.OfferType `json:"offer_type" binding:"required"`
	Title         string           `json:"title" binding:"required"`
	Description   string           `json:"description"`
	Bank          string           `json:"bank"`
	Bins          []string         `json:"bins"`
	PromoType     string           `json:"promo_type"`
	Promocode     string           `json:"promocode"`
	Pincode       string           `json:"pincode"`
	MinValue      float64          `json:"min_value"`
	OfferAmount   float64          `json:"offer_amount"`
	StartValidity time.Time        `json:"start_validity"`
	EndValidity   time.Time        `json:"end_validity"`
	IsActive      bool             `json:"is_active"`
}

func (r OfferRequest) fields() services.OfferFields {
	return services.OfferFields{
		OfferType:     r.OfferType,
		Title:         r.Title,
		Description:   r.Description,
		Bank:          r.Bank,
		Bins:          r.Bins,
		PromoType:     r.PromoType,
		Promocode:     r.Promocode,
		Pincode:       r.Pincode,
		MinValue:      r.MinValue,
		OfferAmount:   r.OfferAmount,
		StartValidity: r.StartValidity,
		EndValidity:   r.EndValidity,
		IsActive:      r.IsActive,
	}
}

// GetOffers returns the offers visible to the vendor: its vendor-scoped
// offers plus every GENERIC one. ?active=true additionally keeps only offers
// whose validity window covers now.
func GetOffers(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)

	offers, err := Offers.OffersForVendor(c.Request.Context(), vendorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if c.Query("active") == "true" {
		now := time.Now()
		live := []models.Offer{}
		for _, offer := range offers {
			if offer.IsLive(now) {
				live = append(live, offer)
			}
		}
		offers = live
	}

	c.JSON(http.StatusOK, gin.H{"count": len(offers), "offers": offers})
}

// AddOffer creates an offer scoped to the creating vendor
func AddOffer(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offer, err := Offers.CreateOffer(c.Request.Context(), vendorID, req.fields())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Offer created", "offer": offer})
}

// EditOffer overwrites an existing offer's mutable fields
func EditOffer(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	offerID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer id"})
		return
	}

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offer, err := Offers.EditOffer(c.Request.Context(), offerID, vendorID, req.fields())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Offer updated", "offer": offer})
}
