package storage

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ayeshmadusanka/energyrush/internal/models"
)

// DatabaseStore implements Store backed by PostgreSQL via GORM
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a new database-backed store
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Product operations

func (d *DatabaseStore) CreateProduct(product *models.Product) (*models.Product, error) {
	if err := d.db.Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (d *DatabaseStore) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := d.db.First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, err
	}
	return &product, nil
}

func (d *DatabaseStore) GetAllProducts() ([]*models.Product, error) {
	var products []*models.Product
	if err := d.db.Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProductFields applies the given column updates inside a transaction
// so the row is either fully updated or untouched.
func (d *DatabaseStore) UpdateProductFields(id uint, fields map[string]interface{}) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Product{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("product not found")
		}
		return nil
	})
}

func (d *DatabaseStore) DeleteProduct(id uint) error {
	result := d.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}

// Order operations

func (d *DatabaseStore) CreateOrder(order *models.Order) (*models.Order, error) {
	if err := d.db.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (d *DatabaseStore) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := d.db.First(&order, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order not found")
		}
		return nil, err
	}
	return &order, nil
}

func (d *DatabaseStore) GetAllOrders() ([]*models.Order, error) {
	var orders []*models.Order
	if err := d.db.Order("id desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (d *DatabaseStore) SearchOrders(filter *models.OrderFilter) ([]*models.Order, error) {
	query := d.db.Model(&models.Order{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		query = query.Where("created_at >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("created_at < (?::date + interval '1 day')", filter.DateTo)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("customer_name ILIKE ? OR customer_phone LIKE ?", like, like)
	}

	var orders []*models.Order
	if err := query.Order("id desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderFields applies the given column updates inside a transaction
// so the row is either fully updated or untouched.
func (d *DatabaseStore) UpdateOrderFields(id uint, fields map[string]interface{}) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Order{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("order not found")
		}
		return nil
	})
}

func (d *DatabaseStore) DeleteOrder(id uint) error {
	result := d.db.Delete(&models.Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order not found")
	}
	return nil
}

func (d *DatabaseStore) CountOrdersByStatus() (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	err := d.db.Model(&models.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Chat audit operations

func (d *DatabaseStore) CreateInteraction(interaction *models.ChatInteraction) (*models.ChatInteraction, error) {
	if err := d.db.Create(interaction).Error; err != nil {
		return nil, err
	}
	return interaction, nil
}

func (d *DatabaseStore) UpdateInteraction(id uint, confirmed, executed bool) error {
	result := d.db.Model(&models.ChatInteraction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"confirmed": confirmed, "executed": executed})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("interaction not found")
	}
	return nil
}

func (d *DatabaseStore) RecentInteractions(sessionID string, limit int) ([]*models.ChatInteraction, error) {
	var interactions []*models.ChatInteraction
	query := d.db.Where("session_id = ?", sessionID).Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}

// Session memory operations

func (d *DatabaseStore) PutSessionValue(sessionID, key, value string) error {
	entry := models.SessionMemory{
		SessionID: sessionID,
		Key:       key,
		Value:     value,
	}
	return d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (d *DatabaseStore) GetSessionValue(sessionID, key string) (string, error) {
	var entry models.SessionMemory
	err := d.db.Where("session_id = ? AND key = ?", sessionID, key).First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return entry.Value, nil
}
