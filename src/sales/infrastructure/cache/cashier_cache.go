package cache

import (
	"database/sql"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Cashier representa un usuario cajero en el cache.
type Cashier struct {
	ID       uuid.UUID
	Username string
	Role     string
}

// CashierCache cache en memoria de cajeros para resolver nombres en tickets
// y reportes sin joinear users en cada query. Los usuarios se administran
// fuera de este servicio; acá la tabla es de solo lectura.
type CashierCache struct {
	cashiers map[uuid.UUID]Cashier
	mu       sync.RWMutex
}

// NewCashierCache crea un nuevo cache de cajeros.
func NewCashierCache() *CashierCache {
	return &CashierCache{
		cashiers: make(map[uuid.UUID]Cashier),
	}
}

// LoadFromDB carga los cajeros desde la tabla users.
func (c *CashierCache) LoadFromDB(db *sql.DB) error {
	log.Println("🔄 Loading cashiers into cache...")

	query := `
		SELECT id, username, role
		FROM users
	`

	rows, err := db.Query(query)
	if err != nil {
		log.Printf("⚠️  Warning: Could not load cashiers: %v", err)
		return err
	}
	defer rows.Close()

	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for rows.Next() {
		var cashier Cashier
		err := rows.Scan(&cashier.ID, &cashier.Username, &cashier.Role)
		if err != nil {
			log.Printf("⚠️  Error scanning cashier: %v", err)
			continue
		}
		c.cashiers[cashier.ID] = cashier
		count++
	}

	log.Printf("✅ Loaded %d cashiers into cache", count)

	return rows.Err()
}

// Get obtiene un cajero por ID.
func (c *CashierCache) Get(id uuid.UUID) (Cashier, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cashier, ok := c.cashiers[id]
	return cashier, ok
}

// GetName obtiene solo el nombre de usuario de un cajero por ID.
func (c *CashierCache) GetName(id uuid.UUID) string {
	cashier, ok := c.Get(id)
	if !ok {
		return "Unknown"
	}
	return cashier.Username
}

// Put agrega o reemplaza un cajero en el cache. Se usa al dar de alta
// sesiones nuevas sin recargar toda la tabla.
func (c *CashierCache) Put(cashier Cashier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cashiers[cashier.ID] = cashier
}
