package models

type Revenue struct {
	Month   string `gorm:"primaryKey;size:4"`
	Revenue int64
}

func (Revenue) TableName() string {
	return "revenue"
}
