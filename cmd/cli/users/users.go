package users

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rkondo/realrent/cmd/cli/config"
	"github.com/rkondo/realrent/cmd/cli/output"
	"github.com/rkondo/realrent/cmd/cli/root"
	"github.com/rkondo/realrent/internal/models"
	"github.com/spf13/cobra"
)

const tokenFileName = ".realrent_token"

// ==========================
// CLI Command Init
// ==========================
func init() {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users and authentication",
		Long: `Register or login a user against the realrent API.
Stores the JWT token locally for future commands.`,
	}

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		Long:  "Register a new user with username and password.",
		RunE:  runRegister,
	}

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Login an existing user",
		Long:  "Login and save the JWT token locally for future CLI commands.",
		RunE:  runLogin,
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Logout current user",
		Long:  "Remove the locally saved JWT token.",
		RunE:  runLogout,
	}

	usersCmd.AddCommand(registerCmd, loginCmd, logoutCmd, listUsersCmd())
	root.GetRoot().AddCommand(usersCmd)
}

// ==========================
// Register User
// ==========================
func runRegister(cmd *cobra.Command, args []string) error {
	var username, password string
	fmt.Print("Username: ")
	fmt.Scanln(&username)
	fmt.Print("Password: ")
	fmt.Scanln(&password)

	payload := map[string]string{
		"username": username,
		"password": password,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(config.APIURL()+"/auth/register", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s", string(b))
	}

	fmt.Println("User registered successfully! You can now login.")
	return nil
}

// ==========================
// Login User
// ==========================
func runLogin(cmd *cobra.Command, args []string) error {
	var username, password string
	fmt.Print("Username: ")
	fmt.Scanln(&username)
	fmt.Print("Password: ")
	fmt.Scanln(&password)

	payload := map[string]string{
		"username": username,
		"password": password,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(config.APIURL()+"/auth/login", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s", string(b))
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}

	if result.Token == "" {
		return fmt.Errorf("token not returned by API")
	}

	if err := saveToken(result.Token); err != nil {
		return err
	}

	fmt.Println("Login successful! JWT token saved locally.")
	return nil
}

// ==========================
// Logout User
// ==========================
func runLogout(cmd *cobra.Command, args []string) error {
	path := tokenPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No user logged in.")
		return nil
	}

	if err := os.Remove(path); err != nil {
		return err
	}

	fmt.Println("Logged out successfully.")
	return nil
}

// ==========================
// List Users
// ==========================
func listUsersCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		Run: func(cmd *cobra.Command, args []string) {
			var out struct {
				Users []models.User `json:"users"`
				Count int           `json:"count"`
			}
			if err := GetJSON("/api/users", &out); err != nil {
				fmt.Println("Error:", err)
				return
			}

			if asJSON {
				b, _ := json.MarshalIndent(out.Users, "", "  ")
				fmt.Println(string(b))
				return
			}

			rows := make([][]interface{}, 0, len(out.Users))
			for _, u := range out.Users {
				rows = append(rows, []interface{}{u.ID, u.Username, u.CreatedAt.Format("2006-01-02 15:04")})
			}
			output.RenderTable([]string{"ID", "Username", "Created"}, rows)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of a table")
	return cmd
}

// ==========================
// Token Storage Helpers
// ==========================
func saveToken(token string) error {
	return os.WriteFile(tokenPath(), []byte(token), 0600)
}

// LoadToken reads the locally saved JWT token, for use by other CLI commands.
func LoadToken() (string, error) {
	data, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func tokenPath() string {
	dir, _ := os.UserHomeDir()
	return filepath.Join(dir, tokenFileName)
}

// GetJSON performs an authenticated GET against the API and decodes the JSON
// response into out.
func GetJSON(path string, out any) error {
	req, err := http.NewRequest("GET", config.APIURL()+path, nil)
	if err != nil {
		return err
	}
	if token, err := LoadToken(); err == nil {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s", string(b))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// DoJSON performs an authenticated request with a JSON body and decodes the
// response into out when out is non-nil.
func DoJSON(method, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(method, config.APIURL()+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token, err := LoadToken(); err == nil {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s", string(b))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
