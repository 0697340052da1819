package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Feed печатает все посты, новые первыми (публичный эндпоинт, логин не нужен)
func (c *Cli) Feed(ctx context.Context) error {
	posts, err := c.apiClient.ListPosts(ctx)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		c.io.Println("No posts yet.")
		return nil
	}

	for _, post := range posts {
		c.io.Printf("#%d  %s  @%s\n", post.ID, post.CreatedAt.Local().Format("2006-01-02 15:04"), post.Username)
		c.io.Printf("    %s\n", post.Content)
	}

	return nil
}

// Post создает новый пост от имени текущей сессии
func (c *Cli) Post(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: microblog post <content>")
	}
	content := strings.Join(args, " ")

	sess, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	if err := c.apiClient.CreatePost(ctx, sess.Token, content); err != nil {
		return err
	}

	c.io.Println("Posted.")
	return nil
}

// Edit изменяет содержимое собственного поста
func (c *Cli) Edit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: microblog edit <id> <content>")
	}

	postID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid post id %q", args[0])
	}
	content := strings.Join(args[1:], " ")

	sess, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	if err := c.apiClient.UpdatePost(ctx, sess.Token, postID, content); err != nil {
		return err
	}

	c.io.Println("Updated.")
	return nil
}

// Delete удаляет собственный пост
func (c *Cli) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: microblog delete <id>")
	}

	postID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid post id %q", args[0])
	}

	sess, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	if err := c.apiClient.DeletePost(ctx, sess.Token, postID); err != nil {
		return err
	}

	c.io.Println("Deleted.")
	return nil
}
