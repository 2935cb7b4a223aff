package inventory

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"sala-admin/app/models"
)

// GetItemsAPI returns all active inventory items.
func GetItemsAPI(c *fiber.Ctx, db *sql.DB) error {
	query := `SELECT id, name, category, unit_price, unit_cost, stock_qty,
			  low_stock_level, is_active, created_at, updated_at
			  FROM items WHERE deleted_at IS NULL ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch items")
	}
	defer rows.Close()

	items := []*models.Item{}
	for rows.Next() {
		item := &models.Item{}
		err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.UnitPrice,
			&item.UnitCost, &item.StockQty, &item.LowStockLevel, &item.IsActive,
			&item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}

// CreateItemAPI creates a new inventory item.
func CreateItemAPI(c *fiber.Ctx, db *sql.DB) error {
	var item models.Item
	if err := c.BodyParser(&item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if item.Name == "" || item.UnitPrice < 0 || item.StockQty < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}
	if item.LowStockLevel == 0 {
		item.LowStockLevel = 5
	}

	query := `INSERT INTO items (name, category, unit_price, unit_cost, stock_qty, low_stock_level)
			  VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, item.Name, item.Category, item.UnitPrice, item.UnitCost,
		item.StockQty, item.LowStockLevel).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create item")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    item,
		"message": "Item created successfully",
	})
}

// UpdateItemAPI updates an inventory item.
func UpdateItemAPI(c *fiber.Ctx, db *sql.DB) error {
	var item models.Item
	if err := c.BodyParser(&item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	query := `UPDATE items SET name = $1, category = $2, unit_price = $3, unit_cost = $4,
			  stock_qty = $5, low_stock_level = $6, updated_at = NOW()
			  WHERE id = $7 AND deleted_at IS NULL`
	result, err := db.Exec(query, item.Name, item.Category, item.UnitPrice, item.UnitCost,
		item.StockQty, item.LowStockLevel, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update item")
	}
	if n, err := result.RowsAffected(); err != nil || n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Item not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item updated successfully",
	})
}

// DeleteItemAPI soft deletes an inventory item.
func DeleteItemAPI(c *fiber.Ctx, db *sql.DB) error {
	result, err := db.Exec(`UPDATE items SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete item")
	}
	if n, err := result.RowsAffected(); err != nil || n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Item not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item deleted successfully",
	})
}

// RecordSaleAPI records a sale, decrementing stock inside a transaction.
// Overselling is refused rather than letting stock go negative.
func RecordSaleAPI(c *fiber.Ctx, db *sql.DB) error {
	type saleRequest struct {
		ItemID   string `json:"item_id"`
		Quantity int    `json:"quantity"`
	}
	var req saleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.ItemID == "" || req.Quantity <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}

	tx, err := db.Begin()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record sale")
	}
	defer tx.Rollback()

	var unitPrice float64
	var stock int
	err = tx.QueryRow(`SELECT unit_price, stock_qty FROM items
		WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, req.ItemID).Scan(&unitPrice, &stock)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Item not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record sale")
	}
	if stock < req.Quantity {
		return fiber.NewError(fiber.StatusConflict, "Insufficient stock")
	}

	if _, err := tx.Exec(`UPDATE items SET stock_qty = stock_qty - $1, updated_at = NOW()
		WHERE id = $2`, req.Quantity, req.ItemID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record sale")
	}

	sale := models.Sale{
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		UnitPrice: unitPrice,
		Total:     unitPrice * float64(req.Quantity),
		SoldAt:    time.Now(),
	}
	if userID, ok := c.Locals("user_id").(string); ok {
		sale.SoldBy = userID
	}

	var soldBy interface{}
	if sale.SoldBy != "" {
		soldBy = sale.SoldBy
	}
	err = tx.QueryRow(`INSERT INTO sales (item_id, quantity, unit_price, total, sold_by, sold_at)
		VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at`,
		sale.ItemID, sale.Quantity, sale.UnitPrice, sale.Total, soldBy, sale.SoldAt).
		Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record sale")
	}

	if err := tx.Commit(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record sale")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    sale,
		"message": "Sale recorded successfully",
	})
}

// GetSalesAPI lists sales, optionally within a date range.
func GetSalesAPI(c *fiber.Ctx, db *sql.DB) error {
	dateFrom := c.Query("date_from")
	dateTo := c.Query("date_to")

	query := `SELECT sa.id, sa.item_id, sa.quantity, sa.unit_price, sa.total,
			  COALESCE(sa.sold_by::text, ''), sa.sold_at, sa.created_at, i.name
			  FROM sales sa JOIN items i ON sa.item_id = i.id
			  WHERE sa.deleted_at IS NULL`
	var args []interface{}
	if dateFrom != "" {
		args = append(args, dateFrom)
		query += ` AND sa.sold_at >= $1`
	}
	if dateTo != "" {
		args = append(args, dateTo)
		if len(args) == 1 {
			query += ` AND sa.sold_at <= $1`
		} else {
			query += ` AND sa.sold_at <= $2`
		}
	}
	query += ` ORDER BY sa.sold_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch sales")
	}
	defer rows.Close()

	sales := []*models.Sale{}
	for rows.Next() {
		sale := &models.Sale{Item: &models.Item{}}
		err := rows.Scan(&sale.ID, &sale.ItemID, &sale.Quantity, &sale.UnitPrice,
			&sale.Total, &sale.SoldBy, &sale.SoldAt, &sale.CreatedAt, &sale.Item.Name)
		if err != nil {
			continue
		}
		sales = append(sales, sale)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sales,
	})
}

// GetInventoryStatsAPI returns stock value and low-stock items.
func GetInventoryStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	var totalItems, lowStock int
	var stockValue float64
	db.QueryRow(`SELECT COUNT(*),
		COUNT(CASE WHEN stock_qty <= low_stock_level THEN 1 END),
		COALESCE(SUM(stock_qty * unit_price), 0)
		FROM items WHERE deleted_at IS NULL AND is_active = true`).
		Scan(&totalItems, &lowStock, &stockValue)
	// Ignore errors and return zero stats so the page always renders

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_items":     totalItems,
			"low_stock_items": lowStock,
			"stock_value":     stockValue,
		},
	})
}
