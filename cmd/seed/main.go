package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"fittrack/database"
	"fittrack/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	demoUsers := seedCmd.Int("demo-users", 0, "Number of demo users to create alongside the achievement catalog")

	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)

	cleanCmd := flag.NewFlagSet("clean", flag.ExitOnError)

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		if err := utils.SeedAchievements(database.DB); err != nil {
			log.Fatalf("Error seeding achievements: %v", err)
		}
		if *demoUsers > 0 {
			if err := utils.SeedDemoUsers(database.DB, *demoUsers); err != nil {
				log.Fatalf("Error seeding demo users: %v", err)
			}
		}
	case "check":
		checkCmd.Parse(os.Args[2:])
		count, err := utils.AchievementCount(database.DB)
		if err != nil {
			log.Fatalf("Error counting achievements: %v", err)
		}
		log.Printf("Achievement catalog: %d entries", count)
	case "clean":
		cleanCmd.Parse(os.Args[2:])
		if err := utils.CleanupDemoUsers(database.DB); err != nil {
			log.Fatalf("Error cleaning demo users: %v", err)
		}
	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage: seed <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  seed    Seed the achievement catalog (--demo-users N adds demo accounts)")
	fmt.Println("  check   Print the achievement catalog size")
	fmt.Println("  clean   Delete demo accounts")
}
