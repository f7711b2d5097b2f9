package console

import "context"

func (c *Cli) runLogout(ctx context.Context) error {
	username := c.sessions.Current().Username

	if err := c.sessions.Logout(ctx); err != nil {
		return err
	}

	if username != "" {
		c.io.Printf("Logged out %s.\n", username)
	} else {
		c.io.Println("Logged out.")
	}
	return nil
}
