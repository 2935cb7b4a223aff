package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"sala-admin/app/config"
	"sala-admin/app/database"
	"sala-admin/app/models"
	"sala-admin/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "email address for the new user")
	password := flag.String("password", "", "initial password (min 8 characters)")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	roles := flag.String("roles", "staff", "comma-separated role names (admin, accountant, staff)")
	flag.Parse()

	if *email == "" || *firstName == "" || *lastName == "" {
		flag.Usage()
		os.Exit(2)
	}
	if len(*password) < 8 {
		fmt.Println("Password must be at least 8 characters")
		os.Exit(2)
	}

	config.InitDB()
	db := config.GetDB()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Email:     *email,
		Password:  hash,
		FirstName: *firstName,
		LastName:  *lastName,
	}
	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	allRoles, err := database.ListRoles(db)
	if err != nil {
		fmt.Printf("Error listing roles: %v\n", err)
		os.Exit(1)
	}
	var roleIDs []string
	for _, name := range strings.Split(*roles, ",") {
		name = strings.TrimSpace(name)
		for _, r := range allRoles {
			if r.Name == name {
				roleIDs = append(roleIDs, r.ID)
			}
		}
	}
	if len(roleIDs) > 0 {
		if err := database.SetUserRoles(db, user.ID, roleIDs); err != nil {
			fmt.Printf("Error assigning roles: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
