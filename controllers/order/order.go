package orderControllers

import (
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kutu95/kamelie-greenhouse-sub001/cart"
	"github.com/kutu95/kamelie-greenhouse-sub001/models"
	"github.com/kutu95/kamelie-greenhouse-sub001/pricing"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Prices are gross; the VAT share is reported on the order, not added on top.
const vatRate = 0.19

// Orders at or above this subtotal ship free.
const (
	freeShippingFrom = 150.00
	flatShippingCost = 8.90
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	Phone         string `json:"phone"`
	Street        string `json:"street" binding:"required"`
	PostalCode    string `json:"postal_code" binding:"required"`
	City          string `json:"city" binding:"required"`
	Country       string `json:"country"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusReadyToShip):
		return models.OrderStatusReadyToShip, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusPaid):
		return models.PaymentStatusPaid, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	case string(models.PaymentStatusRefunded):
		return models.PaymentStatusRefunded, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

func generateOrderRef() string {
	// Example: 20250908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// -------- Core Logic --------

// placeOrder assembles an order from the session's swept cart. Only here is
// the catalog consulted again: product stock is checked and deducted under a
// row lock. Carts with unresolved (pending) prices are rejected until the
// client re-resolves them.
func placeOrder(db *gorm.DB, sessionID string, req PlaceOrderRequest) (models.Order, error) {
	storage := cart.NewDBStorage(db, sessionID)
	resolver := pricing.NewResolver(pricing.NewGormMatrix(db))
	s := cart.Load(storage, resolver)

	items := s.Items()
	if len(items) == 0 {
		return models.Order{}, errors.New("cart is empty")
	}
	if s.HasPendingPrices() {
		return models.Order{}, errors.New("cart contains items with unresolved prices")
	}

	subtotal := s.Total()
	shipping := flatShippingCost
	if subtotal >= freeShippingFrom {
		shipping = 0
	}
	total := round2(subtotal + shipping)

	order := models.Order{
		OrderRef:      generateOrderRef(),
		SessionID:     sessionID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Phone:         req.Phone,
		Street:        req.Street,
		PostalCode:    req.PostalCode,
		City:          req.City,
		Country:       req.Country,
		Subtotal:      subtotal,
		ShippingCost:  shipping,
		VATAmount:     round2(total * vatRate / (1 + vatRate)),
		TotalAmount:   total,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			ref, err := cart.ParseKey(item.Kind, item.Key)
			if err != nil {
				// Sweep already ran on load; a bad key here means the
				// blob changed underneath us. Refuse the order.
				return errors.New("cart contains an invalid line item")
			}

			switch item.Kind {
			case models.LineProduct:
				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&product, "id = ?", ref.RefID).Error; err != nil {
					return errors.New("product no longer exists: " + item.Name)
				}
				if product.Stock < item.Quantity {
					return errors.New("insufficient stock for product: " + product.Name)
				}
				product.Stock -= item.Quantity
				if err := tx.Save(&product).Error; err != nil {
					return err
				}

			case models.LineVariety:
				var cultivar models.Cultivar
				if err := tx.First(&cultivar, "id = ?", ref.RefID).Error; err != nil {
					return errors.New("cultivar no longer exists: " + item.Name)
				}
			}

			order.Items = append(order.Items, models.OrderItem{
				Kind:      item.Kind,
				RefID:     ref.RefID,
				Name:      item.Name,
				AgeYears:  item.AgeYears,
				Size:      item.Size,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
			})
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clear the persisted cart now that the order exists.
		return tx.Delete(&models.CartRecord{}, "session_id = ?", sessionID).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	return order, nil
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := placeOrder(db, sessionIDVal.(string), req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, gin.H{"order_ref": order.OrderRef, "order": order})
	}
}

// GET /orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderRef
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.Preload("Items").
			First(&order, "order_ref = ?", c.Param("orderRef")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderRef/status (admin)
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).
			Where("order_ref = ?", c.Param("orderRef")).
			Update("status", status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}

// PUT /orders/:orderRef/payment-status (admin)
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).
			Where("order_ref = ?", c.Param("orderRef")).
			Update("payment_status", status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
	}
}
