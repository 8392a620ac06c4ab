package contextkeys

// Custom key type to avoid collisions with other context users.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle (pool or test
// transaction) is stored in the request context.
const DBContextKey = contextKey("db")
