package database

// schemaStatements holds the DDL for every table, ordered so that
// referenced tables are created first.  All foreign keys cascade on
// delete: removing a concert removes its tickets, orders and shifts;
// removing an artist, venue, category or ticket removes everything that
// depends on it.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id   BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		INDEX idx_categories_name (name)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS artists (
		id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name        VARCHAR(100) NOT NULL,
		description TEXT NOT NULL,
		image_url   VARCHAR(255) NOT NULL DEFAULT '',
		genre       VARCHAR(50) NOT NULL DEFAULT '',
		INDEX idx_artists_name (name),
		INDEX idx_artists_genre (genre)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS venues (
		id       BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name     VARCHAR(100) NOT NULL,
		city     VARCHAR(100) NOT NULL,
		address  VARCHAR(255) NOT NULL DEFAULT '',
		capacity INT UNSIGNED NOT NULL DEFAULT 0,
		INDEX idx_venues_city (city)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS concerts (
		id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		artist_id   BIGINT UNSIGNED NOT NULL,
		venue_id    BIGINT UNSIGNED NOT NULL,
		start_time  DATETIME NOT NULL,
		end_time    DATETIME NOT NULL,
		description TEXT NOT NULL,
		INDEX idx_concerts_start (start_time),
		INDEX idx_concerts_end (end_time),
		CONSTRAINT fk_concerts_artist FOREIGN KEY (artist_id) REFERENCES artists(id) ON DELETE CASCADE,
		CONSTRAINT fk_concerts_venue  FOREIGN KEY (venue_id)  REFERENCES venues(id)  ON DELETE CASCADE
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS tickets (
		id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		concert_id  BIGINT UNSIGNED NOT NULL,
		category_id BIGINT UNSIGNED NOT NULL,
		price_cents BIGINT NOT NULL,
		sale_date   DATE NOT NULL DEFAULT (CURRENT_DATE),
		quantity    INT UNSIGNED NOT NULL,
		INDEX idx_tickets_price (price_cents),
		INDEX idx_tickets_sale_date (sale_date),
		CONSTRAINT fk_tickets_concert  FOREIGN KEY (concert_id)  REFERENCES concerts(id)   ON DELETE CASCADE,
		CONSTRAINT fk_tickets_category FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE,
		CONSTRAINT chk_tickets_price CHECK (price_cents >= 0)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS ticket_orders (
		id                BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		concert_id        BIGINT UNSIGNED NOT NULL,
		ticket_id         BIGINT UNSIGNED NOT NULL,
		customer_name     VARCHAR(100) NOT NULL,
		email             VARCHAR(255) NOT NULL,
		phone             VARCHAR(20) NOT NULL,
		ticket_type       ENUM('dancefloor','fan-zone','vip') NOT NULL,
		quantity          INT UNSIGNED NOT NULL,
		total_price_cents BIGINT NOT NULL,
		order_date        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		order_number      VARCHAR(20) NULL,
		UNIQUE INDEX uq_orders_number (order_number),
		INDEX idx_orders_date (order_date),
		INDEX idx_orders_type (ticket_type),
		CONSTRAINT fk_orders_concert FOREIGN KEY (concert_id) REFERENCES concerts(id) ON DELETE CASCADE,
		CONSTRAINT fk_orders_ticket  FOREIGN KEY (ticket_id)  REFERENCES tickets(id)  ON DELETE CASCADE
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS posts (
		id           BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		title        VARCHAR(50) NOT NULL,
		salary_cents BIGINT NOT NULL,
		INDEX idx_posts_title (title)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS staff (
		id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		first_name  VARCHAR(50) NOT NULL,
		last_name   VARCHAR(50) NOT NULL,
		father_name VARCHAR(50) NOT NULL DEFAULT '',
		phone       VARCHAR(20) NOT NULL,
		post_id     BIGINT UNSIGNED NOT NULL,
		INDEX idx_staff_last_name (last_name),
		INDEX idx_staff_phone (phone),
		CONSTRAINT fk_staff_post FOREIGN KEY (post_id) REFERENCES posts(id) ON DELETE CASCADE
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS shifts (
		id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		hours      TIME NOT NULL,
		staff_id   BIGINT UNSIGNED NOT NULL,
		concert_id BIGINT UNSIGNED NOT NULL,
		CONSTRAINT fk_shifts_staff   FOREIGN KEY (staff_id)   REFERENCES staff(id)    ON DELETE CASCADE,
		CONSTRAINT fk_shifts_concert FOREIGN KEY (concert_id) REFERENCES concerts(id) ON DELETE CASCADE
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(100) NOT NULL,
		role          VARCHAR(20) NOT NULL DEFAULT 'ADMIN',
		is_active     TINYINT(1) NOT NULL DEFAULT 1,
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE INDEX uq_users_email (email)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id    BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME NULL,
		INDEX idx_refresh_hash (token_hash),
		CONSTRAINT fk_refresh_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB`,
}
