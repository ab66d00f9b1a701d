package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors     int
	LoginSuccess    int
	LoginFailures   int
	ProductsCreated int
	ProductsUpdated int
	ProductsDeleted int
	OffersCreated   int
	OffersUpdated   int
	OffersDeleted   int
	ErrorPatterns   map[string]int
}

func main() {
	today := time.Now().Format("2006-01-02")
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "./logs"
	}

	stats := &LogStats{
		ErrorPatterns: make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)

	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		if strings.Contains(line, "Invalid password for admin") ||
			strings.Contains(line, "Admin not found for email") {
			stats.LoginFailures++
		}

		extractErrorPattern(line, stats)
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.Contains(line, "Admin login successful"):
			stats.LoginSuccess++
		case strings.Contains(line, "Created product"):
			stats.ProductsCreated++
		case strings.Contains(line, "Updated product"):
			stats.ProductsUpdated++
		case strings.Contains(line, "Deleted product"):
			stats.ProductsDeleted++
		case strings.Contains(line, "Created offer"):
			stats.OffersCreated++
		case strings.Contains(line, "Updated offer"):
			stats.OffersUpdated++
		case strings.Contains(line, "Deleted offer"):
			stats.OffersDeleted++
		}
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	// Extract the main error message
	parts := strings.Split(line, ":")
	if len(parts) > 1 {
		errorMsg := strings.TrimSpace(parts[1])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Admin Authentication:")
	fmt.Printf("   Successful Logins: %d\n", stats.LoginSuccess)
	fmt.Printf("   Failed Logins: %d\n", stats.LoginFailures)

	fmt.Println("\n2. Catalog Activity:")
	fmt.Printf("   Products Created: %d\n", stats.ProductsCreated)
	fmt.Printf("   Products Updated: %d\n", stats.ProductsUpdated)
	fmt.Printf("   Products Deleted: %d\n", stats.ProductsDeleted)
	fmt.Printf("   Offers Created: %d\n", stats.OffersCreated)
	fmt.Printf("   Offers Updated: %d\n", stats.OffersUpdated)
	fmt.Printf("   Offers Deleted: %d\n", stats.OffersDeleted)

	fmt.Println("\n3. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)

	fmt.Println("\n4. Most Common Errors:")
	printTopErrors(stats.ErrorPatterns, 5)
}

func printTopErrors(errors map[string]int, limit int) {
	type errorCount struct {
		error string
		count int
	}

	var errorList []errorCount
	for err, count := range errors {
		errorList = append(errorList, errorCount{err, count})
	}

	sort.Slice(errorList, func(i, j int) bool {
		return errorList[i].count > errorList[j].count
	})

	for i, err := range errorList {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d occurrences\n", err.error, err.count)
	}
}
