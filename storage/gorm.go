package storage

import (
	"errors"
	"fmt"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"hotel-frontdesk/models"
)

// customerRow and roomRow carry a position column so the SQL backend keeps
// the insertion order the text files have for free.
type customerRow struct {
	ID       int    `gorm:"column:id;primaryKey;autoIncrement:false"`
	Position int    `gorm:"column:position;index"`
	Name     string `gorm:"column:name;size:255"`
	Contact  string `gorm:"column:contact;size:255"`
	Email    string `gorm:"column:email;size:255"`
}

func (customerRow) TableName() string { return "customers" }

type roomRow struct {
	Number     int    `gorm:"column:number;primaryKey;autoIncrement:false"`
	Position   int    `gorm:"column:position;index"`
	Type       string `gorm:"column:type;size:32"`
	Occupied   bool   `gorm:"column:occupied;default:false"`
	CustomerID *int   `gorm:"column:customer_id"`
}

func (roomRow) TableName() string { return "rooms" }

// AutoMigrate creates or updates every table the SQL backend uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerRow{},
		&roomRow{},
		&models.FrontDeskEvent{},
	)
}

// CustomerTable stores customers in SQL with the same full-rewrite
// contract as CustomerFile.
type CustomerTable struct {
	DB *gorm.DB
}

func NewCustomerTable(db *gorm.DB) *CustomerTable {
	return &CustomerTable{DB: db}
}

func (t *CustomerTable) LoadCustomers() ([]models.Customer, error) {
	var rows []customerRow
	if err := t.DB.Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	customers := make([]models.Customer, len(rows))
	for i, row := range rows {
		customers[i] = models.Customer{ID: row.ID, Name: row.Name, Contact: row.Contact, Email: row.Email}
	}
	return customers, nil
}

func (t *CustomerTable) SaveCustomers(customers []models.Customer) error {
	rows := make([]customerRow, len(customers))
	for i, c := range customers {
		rows[i] = customerRow{ID: c.ID, Position: i, Name: c.Name, Contact: c.Contact, Email: c.Email}
	}

	err := t.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&customerRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
	if err != nil {
		return fmt.Errorf("save customers: %w", classify(err))
	}
	return nil
}

type RoomTable struct {
	DB *gorm.DB
}

func NewRoomTable(db *gorm.DB) *RoomTable {
	return &RoomTable{DB: db}
}

// RoomsExist reports whether the rooms table holds any row. An empty
// table is treated as a fresh inventory.
func (t *RoomTable) RoomsExist() (bool, error) {
	var n int64
	if err := t.DB.Model(&roomRow{}).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count rooms: %w", err)
	}
	return n > 0, nil
}

func (t *RoomTable) LoadRooms() ([]models.Room, error) {
	var rows []roomRow
	if err := t.DB.Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	rooms := make([]models.Room, len(rows))
	for i, row := range rows {
		rooms[i] = models.Room{
			Number:     row.Number,
			Type:       row.Type,
			Occupied:   row.Occupied,
			CustomerID: row.CustomerID,
		}
	}
	return rooms, nil
}

func (t *RoomTable) SaveRooms(rooms []models.Room) error {
	rows := make([]roomRow, len(rooms))
	for i, r := range rooms {
		rows[i] = roomRow{
			Number:     r.Number,
			Position:   i,
			Type:       r.Type,
			Occupied:   r.Occupied,
			CustomerID: r.CustomerID,
		}
	}

	err := t.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&roomRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
	if err != nil {
		return fmt.Errorf("save rooms: %w", classify(err))
	}
	return nil
}

// classify maps MySQL duplicate-entry errors (1062) onto ErrDuplicateKey.
func classify(err error) error {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) && merr.Number == 1062 {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, merr.Message)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return err
}
