// cmd/seed loads reference data (states, crops, products, timeline tasks)
// from a seed workbook into the application database. Existing reference
// rows are replaced.
package main

import (
	"flag"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"farmassist/config"
	"farmassist/database"
	"farmassist/entities"
)

func main() {
	path := flag.String("file", "seed.xlsx", "seed workbook path")
	flag.Parse()

	cfg := config.Load()
	db := database.OpenSQLite(cfg.DBPath)

	x, err := excelize.OpenFile(*path)
	if err != nil {
		log.Fatalf("open seed workbook: %v", err)
	}
	defer x.Close()

	if err := db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&entities.TimelineTask{}, &entities.Product{}, &entities.Crop{}, &entities.State{},
		} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}
		if err := seedStates(tx, x); err != nil {
			return err
		}
		if err := seedCrops(tx, x); err != nil {
			return err
		}
		if err := seedProducts(tx, x); err != nil {
			return err
		}
		return seedTimelineTasks(tx, x)
	}); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seeding complete")
}

func rows(x *excelize.File, sheet string) [][]string {
	rs, err := x.GetRows(sheet)
	if err != nil || len(rs) < 2 {
		log.Printf("[seed] sheet %s: nothing to load", sheet)
		return nil
	}
	return rs[1:] // skip header
}

func cell(r []string, i int) string {
	if i >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[i])
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func seedStates(tx *gorm.DB, x *excelize.File) error {
	for _, r := range rows(x, "States") {
		if cell(r, 0) == "" {
			continue
		}
		s := entities.State{Name: cell(r, 0), Code: cell(r, 1)}
		if err := tx.Create(&s).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCrops(tx *gorm.DB, x *excelize.File) error {
	for _, r := range rows(x, "Crops") {
		if cell(r, 0) == "" {
			continue
		}
		c := entities.Crop{
			Name:          cell(r, 0),
			Seasons:       splitList(cell(r, 1)),
			AllowedStates: splitList(cell(r, 2)),
			Description:   cell(r, 3),
		}
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(tx *gorm.DB, x *excelize.File) error {
	for _, r := range rows(x, "Products") {
		if cell(r, 0) == "" {
			continue
		}
		p := entities.Product{
			Name:              cell(r, 0),
			Type:              cell(r, 1),
			ActiveIngredients: cell(r, 2),
			Approval:          cell(r, 3),
			PriceMRP:          cell(r, 4),
		}
		if p.Type == "" {
			p.Type = "other"
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedTimelineTasks(tx *gorm.DB, x *excelize.File) error {
	for _, r := range rows(x, "TimelineTasks") {
		cropName := cell(r, 0)
		if cropName == "" {
			continue
		}
		var crop entities.Crop
		if err := tx.Where("name = ?", cropName).First(&crop).Error; err != nil {
			log.Printf("[seed] skip task for unknown crop %q", cropName)
			continue
		}
		week, err := strconv.Atoi(cell(r, 2))
		if err != nil || week <= 0 {
			continue
		}
		t := entities.TimelineTask{
			CropID:      crop.CropID,
			Season:      cell(r, 1),
			Week:        week,
			Task:        cell(r, 3),
			Description: cell(r, 4),
		}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
	}
	return nil
}
