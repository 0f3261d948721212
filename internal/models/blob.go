package models

import (
	"database/sql/driver"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Blob stores binary image data with a correct column type per database driver.
// MySQL needs LONGBLOB for photos larger than 64KB.
type Blob []byte

// Value implements the driver.Valuer interface
func (b Blob) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}
	return []byte(b), nil
}

// Scan implements the sql.Scanner interface
func (b *Blob) Scan(value interface{}) error {
	if value == nil {
		*b = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		buf := make([]byte, len(v))
		copy(buf, v)
		*b = buf
		return nil
	case string:
		*b = Blob(v)
		return nil
	}
	return fmt.Errorf("Blob: cannot scan %T", value)
}

// GormDBDataType ensures the correct data type is used for each database driver.
func (Blob) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "LONGBLOB"
	case "postgres":
		return "BYTEA"
	case "sqlserver", "mssql":
		return "VARBINARY(MAX)"
	case "sqlite":
		return "BLOB"
	}
	return "BLOB"
}
