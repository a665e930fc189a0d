package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"maison-decor/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) List(ctx context.Context, page, limit int, category, search string) ([]models.Product, int, error) {
	whereConditions := []string{"p.is_active = TRUE"}
	args := []interface{}{}
	argIndex := 1

	if category != "" && category != "All" {
		whereConditions = append(whereConditions, fmt.Sprintf("c.slug = $%d", argIndex))
		args = append(args, category)
		argIndex++
	}

	if search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("p.name ILIKE $%d", argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	where := " WHERE " + strings.Join(whereConditions, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM products p JOIN categories c ON c.id = p.category_id" + where
	if err := models.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT p.id, p.name, p.description, p.category_id, c.name,
		       p.price, p.image_url, p.is_featured, p.is_active,
		       p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
	` + where + fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Category,
			&p.Price, &p.ImageURL, &p.IsFeatured, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}

	return products, total, rows.Err()
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category_id, c.name,
		       p.price, p.image_url, p.cloudinary_id, p.is_featured, p.is_active,
		       p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`

	p := &models.Product{}
	err := models.DB.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Category,
		&p.Price, &p.ImageURL, &p.CloudinaryID, &p.IsFeatured, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()

	query := `
		INSERT INTO products (id, name, description, category_id, price, image_url, cloudinary_id, is_featured, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`
	return models.DB.QueryRow(ctx, query,
		p.ID, p.Name, p.Description, p.CategoryID, p.Price,
		p.ImageURL, p.CloudinaryID, p.IsFeatured, p.IsActive, now, now,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category_id = $4, price = $5,
		    image_url = $6, cloudinary_id = $7, is_featured = $8, is_active = $9,
		    updated_at = $10
		WHERE id = $1
	`
	tag, err := models.DB.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.CategoryID, p.Price,
		p.ImageURL, p.CloudinaryID, p.IsFeatured, p.IsActive, time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", p.ID)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := models.DB.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", id)
	}
	return nil
}

func (r *ProductRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := models.DB.Query(ctx,
		"SELECT id, name, slug, is_active, created_at FROM categories WHERE is_active = TRUE ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
