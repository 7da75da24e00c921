package storage

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"
)

func InitDB(path string) *sql.DB {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Fatal("InitDB(): Failed to open database: ", err)
	}
	if err = db.Ping(); err != nil {
		log.Fatal("storage.InitDB(): Failed to connect to database: ", err)
	}

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
			"id" TEXT PRIMARY KEY,
			"username" TEXT NOT NULL UNIQUE,
			"password" TEXT NOT NULL,
			"nickname" TEXT,
			"fans_count" INTEGER NOT NULL DEFAULT 0,
			"receive_like_count" INTEGER NOT NULL DEFAULT 0,
			"follow_count" INTEGER NOT NULL DEFAULT 0
	);`

	if _, err := db.Exec(createUsersTable); err != nil {
		log.Fatalf("InitDB(): Failed to create users table: %v", err)
	}
	log.Println("InitDB(): Init and create table successfully!")

	return db
}
