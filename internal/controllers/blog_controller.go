package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"bloodlink-backend/internal/models"
	"bloodlink-backend/internal/repository"
	"bloodlink-backend/utils"
)

type blogInput struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Content   string `json:"content"`
}

// AddBlog godoc
// @Summary Create a blog post
// @Description New posts always start as drafts.
// @Tags blogs
// @Accept json
// @Produce json
// @Param blog body blogInput true "Blog"
// @Success 201 {object} map[string]interface{}
// @Router /add-blog [post]
func AddBlog(store repository.BlogStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body blogInput
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if body.Title == "" || body.Content == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title and content are required"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		id, err := store.Insert(ctx, models.Blog{
			Title:     body.Title,
			Thumbnail: body.Thumbnail,
			Content:   body.Content,
			Status:    models.BlogDraft,
			CreatedAt: time.Now(),
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create blog"})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": id, "acknowledged": true})
	}
}

// GetBlogs returns every post, drafts included (admin view).
func GetBlogs(store repository.BlogStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		blogs, err := store.All(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(blogs)
	}
}

// GetBlogsPublic godoc
// @Summary List published blog posts
// @Tags blogs
// @Produce json
// @Success 200 {array} models.Blog
// @Router /get-blogs-public [get]
func GetBlogsPublic(store repository.BlogStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		blogs, err := store.Published(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(blogs)
	}
}

type blogStatusPatch struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// UpdateBlogStatus toggles a post between draft and published.
func UpdateBlogStatus(store repository.BlogStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body blogStatusPatch
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if _, err := utils.Oid(body.ID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
		}
		if !models.IsBlogStatus(body.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		modified, err := store.UpdateStatus(ctx, body.ID, body.Status)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update blog"})
		}
		return c.JSON(fiber.Map{"modifiedCount": modified})
	}
}

// DeleteBlog removes a post regardless of its publish state.
func DeleteBlog(store repository.BlogStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := utils.Oid(id); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		deleted, err := store.Delete(ctx, id)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete blog"})
		}
		return c.JSON(fiber.Map{"deletedCount": deleted})
	}
}
