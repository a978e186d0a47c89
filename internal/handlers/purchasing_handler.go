package handlers

import (
	"net/http"
	"time"

	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"
	"go-chain-ops/internal/reducers"

	"github.com/gin-gonic/gin"
)

type SupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Rating  int32  `json:"rating"`
}

type PurchaseOrderRequest struct {
	OutletID   uint64                          `json:"outlet_id" binding:"required"`
	SupplierID uint64                          `json:"supplier_id" binding:"required"`
	Total      int64                           `json:"total"` // minor units, stored as given
	Date       time.Time                       `json:"date" binding:"required"`
	Items      []models.PurchaseOrderItemInput `json:"items"`
}

func GetSuppliers(c *gin.Context) {
	var suppliers []models.Supplier
	if err := database.DB.Find(&suppliers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suppliers"})
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func AddSupplier(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	supplier, err := reducers.AddSupplier(database.DB, req.Name, req.Contact, req.Rating)
	if err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

func GetPurchaseOrders(c *gin.Context) {
	var orders []models.PurchaseOrder
	if err := database.DB.Preload("Items").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchase orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func CreatePurchaseOrder(c *gin.Context) {
	var req PurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	po, err := reducers.CreatePurchaseOrder(database.DB, req.OutletID, req.SupplierID, req.Total, req.Date, req.Items)
	if err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, po)
}

func ApprovePurchaseOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := reducers.ApprovePurchaseOrder(database.DB, id); err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase order approved"})
}

func RejectPurchaseOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := reducers.RejectPurchaseOrder(database.DB, id); err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase order rejected"})
}
