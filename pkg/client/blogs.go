package client

import (
	"context"
	"net/http"

	"bloodlink-backend/internal/models"
)

func (c *Client) PublicBlogs(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	err := c.do(ctx, http.MethodGet, "/get-blogs-public", nil, nil, &blogs)
	return blogs, err
}

func (c *Client) Blogs(ctx context.Context) ([]models.Blog, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	var blogs []models.Blog
	err := c.do(ctx, http.MethodGet, "/get-blogs", nil, nil, &blogs)
	return blogs, err
}

type blogInput struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Content   string `json:"content"`
}

func (c *Client) AddBlog(ctx context.Context, title, thumbnail, content string) (InsertResult, error) {
	var res InsertResult
	if err := c.requireSession(); err != nil {
		return res, err
	}
	err := c.do(ctx, http.MethodPost, "/add-blog", nil, blogInput{Title: title, Thumbnail: thumbnail, Content: content}, &res)
	return res, err
}

type blogStatusPatch struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (c *Client) UpdateBlogStatus(ctx context.Context, id, status string) (UpdateResult, error) {
	var res UpdateResult
	if err := c.requireSession(); err != nil {
		return res, err
	}
	err := c.do(ctx, http.MethodPatch, "/update-blog-status", nil, blogStatusPatch{ID: id, Status: status}, &res)
	return res, err
}

func (c *Client) DeleteBlog(ctx context.Context, id string) (DeleteResult, error) {
	var res DeleteResult
	if err := c.requireSession(); err != nil {
		return res, err
	}
	err := c.do(ctx, http.MethodDelete, "/delete-blog/"+id, nil, nil, &res)
	return res, err
}
