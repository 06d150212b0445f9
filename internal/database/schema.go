package database

import (
	"context"
	"fmt"
)

// schemaStatements creates the storefront tables in dependency order.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    username VARCHAR(150) NOT NULL,
	    email VARCHAR(150) NOT NULL,
	    password_hash VARCHAR(200) NOT NULL,
	    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    UNIQUE KEY uk_username (username),
	    UNIQUE KEY uk_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS cart_items (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    user_id BIGINT NOT NULL,
	    product_name VARCHAR(150) NOT NULL,
	    price VARCHAR(50) NOT NULL,
	    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    FOREIGN KEY (user_id) REFERENCES users(id),
	    INDEX idx_user_id (user_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	// purchases.user_id carries no foreign key: a purchase outlives whatever
	// happens to the account.
	`CREATE TABLE IF NOT EXISTS purchases (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    user_id BIGINT NOT NULL,
	    id_number VARCHAR(20) NOT NULL,
	    phone_number VARCHAR(15) NOT NULL,
	    email VARCHAR(120) NOT NULL,
	    address VARCHAR(200) NOT NULL,
	    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    INDEX idx_user_id (user_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS orders (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    user_id BIGINT NOT NULL,
	    id_number VARCHAR(11) NOT NULL,
	    phone_number VARCHAR(9) NOT NULL,
	    email VARCHAR(120) NOT NULL,
	    address VARCHAR(255) NOT NULL,
	    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    FOREIGN KEY (user_id) REFERENCES users(id),
	    INDEX idx_user_id (user_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Tables lists the storefront tables, parents first.
var Tables = []string{"users", "cart_items", "purchases", "orders"}

// SetupSchema creates the storefront tables
func (db *DB) SetupSchema(ctx context.Context) error {
	for i, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table %s: %w", Tables[i], err)
		}
	}

	return nil
}

// DropSchema removes all storefront tables
func (db *DB) DropSchema(ctx context.Context) error {
	for i := len(Tables) - 1; i >= 0; i-- {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+Tables[i]); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", Tables[i], err)
		}
	}

	return nil
}
