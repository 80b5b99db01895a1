package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/wrenchworks/shop/internal/config"
	"github.com/wrenchworks/shop/internal/shop/client"
	"github.com/wrenchworks/shop/internal/shop/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	baseURL := config.GetEnvOrDefault("SHOP_API_URL", "http://localhost:8080")
	api := client.New(baseURL)
	in := bufio.NewReader(os.Stdin)

	fmt.Println("=== Repair Order Management System ===")
	fmt.Printf("Please ensure the API is running at %s\n\n", baseURL)

	for {
		showMainMenu(api, in)
	}
}

func showMainMenu(api *client.Client, in *bufio.Reader) {
	fmt.Println("=== Main Menu ===")
	fmt.Println("1. Add Customer")
	fmt.Println("2. Add Vehicle")
	fmt.Println("3. Create Repair Order")
	fmt.Println("4. Search Repair Orders")
	fmt.Println("5. View All Data")
	fmt.Println("6. Update Order Status")
	fmt.Println("7. Shop Statistics")
	fmt.Println("8. Exit")
	fmt.Print("Select an option: ")

	choice := readLine(in)
	fmt.Println()

	ctx := context.Background()

	switch choice {
	case "1":
		addCustomer(ctx, api, in)
	case "2":
		addVehicle(ctx, api, in)
	case "3":
		createRepairOrder(ctx, api, in)
	case "4":
		searchRepairOrders(ctx, api, in)
	case "5":
		viewAllData(ctx, api)
	case "6":
		updateOrderStatus(ctx, api, in)
	case "7":
		showStatistics(ctx, api)
	case "8":
		fmt.Println("Goodbye!")
		os.Exit(0)
	default:
		fmt.Println("Invalid option. Please try again.")
	}
	fmt.Println()
}

func readLine(in *bufio.Reader) string {
	line, err := in.ReadString('\n')
	if err != nil {
		fmt.Println("Goodbye!")
		os.Exit(0)
	}
	return strings.TrimSpace(line)
}

func addCustomer(ctx context.Context, api *client.Client, in *bufio.Reader) {
	fmt.Println("=== Add Customer ===")

	fmt.Print("First Name: ")
	firstName := readLine(in)

	fmt.Print("Last Name: ")
	lastName := readLine(in)

	fmt.Print("Phone Number: ")
	phoneNumber := readLine(in)

	if firstName == "" || lastName == "" || phoneNumber == "" {
		fmt.Println("All fields are required.")
		return
	}

	customer, err := api.CreateCustomer(ctx, service.CreateCustomerRequest{
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phoneNumber,
	})
	if err != nil {
		fmt.Printf("Failed to add customer: %v\n", err)
		return
	}
	fmt.Printf("Customer added successfully! ID: %d\n", customer.ID)
}

func addVehicle(ctx context.Context, api *client.Client, in *bufio.Reader) {
	fmt.Println("=== Add Vehicle ===")

	fmt.Print("Year: ")
	year, err := strconv.Atoi(readLine(in))
	if err != nil {
		fmt.Println("Invalid year.")
		return
	}

	fmt.Print("Make: ")
	make := readLine(in)

	fmt.Print("Model: ")
	model := readLine(in)

	if make == "" || model == "" {
		fmt.Println("Make and Model are required.")
		return
	}

	vehicle, err := api.CreateVehicle(ctx, service.CreateVehicleRequest{
		Year:  year,
		Make:  make,
		Model: model,
	})
	if err != nil {
		fmt.Printf("Failed to add vehicle: %v\n", err)
		return
	}
	fmt.Printf("Vehicle added successfully! ID: %d\n", vehicle.ID)
}

func createRepairOrder(ctx context.Context, api *client.Client, in *bufio.Reader) {
	fmt.Println("=== Create Repair Order ===")

	customers, err := api.ListCustomers(ctx)
	if err != nil {
		fmt.Printf("Failed to load customers: %v\n", err)
		return
	}
	fmt.Println("Available Customers:")
	for _, c := range customers {
		fmt.Printf("  %d: %s\n", c.ID, c.DisplayName())
	}

	fmt.Print("Customer ID: ")
	customerID, err := strconv.Atoi(readLine(in))
	if err != nil {
		fmt.Println("Invalid Customer ID.")
		return
	}

	vehicles, err := api.ListVehicles(ctx)
	if err != nil {
		fmt.Printf("Failed to load vehicles: %v\n", err)
		return
	}
	fmt.Println("Available Vehicles:")
	for _, v := range vehicles {
		fmt.Printf("  %d: %s\n", v.ID, v.DisplayName())
	}

	fmt.Print("Vehicle ID: ")
	vehicleID, err := strconv.Atoi(readLine(in))
	if err != nil {
		fmt.Println("Invalid Vehicle ID.")
		return
	}

	fmt.Print("Description: ")
	description := readLine(in)
	if description == "" {
		fmt.Println("Description is required.")
		return
	}

	fmt.Print("Estimated Cost: $")
	estimatedCost, err := strconv.ParseFloat(readLine(in), 64)
	if err != nil {
		fmt.Println("Invalid cost amount.")
		return
	}

	order, err := api.CreateOrder(ctx, service.CreateOrderRequest{
		CustomerID:    customerID,
		VehicleID:     vehicleID,
		Description:   description,
		EstimatedCost: estimatedCost,
	})
	if err != nil {
		fmt.Printf("Failed to create repair order: %v\n", err)
		return
	}
	fmt.Println("Repair Order created successfully!")
	fmt.Printf("  ID: %d\n", order.ID)
	fmt.Printf("  Description: %s\n", order.Description)
	fmt.Printf("  Estimated Cost: $%.2f\n", order.EstimatedCost)
	fmt.Printf("  Status: %s\n", order.Status)
}

func searchRepairOrders(ctx context.Context, api *client.Client, in *bufio.Reader) {
	fmt.Println("=== Search Repair Orders ===")

	fmt.Print("Customer Last Name: ")
	lastName := readLine(in)
	if lastName == "" {
		fmt.Println("Last name is required.")
		return
	}

	orders, err := api.SearchOrders(ctx, lastName)
	if err != nil {
		fmt.Printf("Search failed: %v\n", err)
		return
	}
	if len(orders) == 0 {
		fmt.Println("No repair orders found for that customer.")
		return
	}

	fmt.Printf("Found %d repair order(s):\n", len(orders))
	for _, order := range orders {
		fmt.Printf("  Order ID: %d\n", order.ID)
		if order.Customer != nil {
			fmt.Printf("  Customer: %s\n", order.Customer.DisplayName())
		}
		if order.Vehicle != nil {
			fmt.Printf("  Vehicle: %s\n", order.Vehicle.DisplayName())
		}
		fmt.Printf("  Description: %s\n", order.Description)
		fmt.Printf("  Cost: $%.2f | Status: %s\n", order.EstimatedCost, order.Status)
		fmt.Printf("  Created: %s\n", order.CreatedDate.Format("2006-01-02 15:04"))
		fmt.Println()
	}
}

func viewAllData(ctx context.Context, api *client.Client) {
	fmt.Println("=== All Data ===")

	customers, err := api.ListCustomers(ctx)
	if err != nil {
		fmt.Printf("Failed to load customers: %v\n", err)
		return
	}
	fmt.Println("Customers:")
	for _, c := range customers {
		fmt.Printf("  %d: %s - %s\n", c.ID, c.DisplayName(), c.PhoneNumber)
	}
	fmt.Println()

	vehicles, err := api.ListVehicles(ctx)
	if err != nil {
		fmt.Printf("Failed to load vehicles: %v\n", err)
		return
	}
	fmt.Println("Vehicles:")
	for _, v := range vehicles {
		fmt.Printf("  %d: %s\n", v.ID, v.DisplayName())
	}
	fmt.Println()

	orders, err := api.ListOrders(ctx)
	if err != nil {
		fmt.Printf("Failed to load repair orders: %v\n", err)
		return
	}
	fmt.Println("Repair Orders:")
	for _, order := range orders {
		customerName := "Unknown Customer"
		if order.Customer != nil {
			customerName = order.Customer.DisplayName()
		}
		vehicleInfo := "Unknown Vehicle"
		if order.Vehicle != nil {
			vehicleInfo = order.Vehicle.DisplayName()
		}
		fmt.Printf("  Order %d: %s - %s\n", order.ID, customerName, vehicleInfo)
		fmt.Printf("    Description: %s\n", order.Description)
		fmt.Printf("    Cost: $%.2f | Status: %s | Created: %s\n",
			order.EstimatedCost, order.Status, order.CreatedDate.Format("2006-01-02"))
	}
}

func updateOrderStatus(ctx context.Context, api *client.Client, in *bufio.Reader) {
	fmt.Println("=== Update Order Status ===")

	fmt.Print("Order ID: ")
	id, err := strconv.Atoi(readLine(in))
	if err != nil {
		fmt.Println("Invalid Order ID.")
		return
	}

	fmt.Print("New Status (Open, In Progress, Completed, Cancelled): ")
	status := readLine(in)
	if status == "" {
		fmt.Println("Status is required.")
		return
	}

	order, err := api.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		fmt.Printf("Failed to update status: %v\n", err)
		return
	}
	fmt.Printf("Order %d is now %s.\n", order.ID, order.Status)
}

func showStatistics(ctx context.Context, api *client.Client) {
	fmt.Println("=== Shop Statistics ===")

	stats, err := api.Statistics(ctx)
	if err != nil {
		fmt.Printf("Failed to load statistics: %v\n", err)
		return
	}

	fmt.Printf("Customers: %d | Vehicles: %d | Repair Orders: %d\n",
		stats.TotalCustomers, stats.TotalVehicles, stats.TotalRepairOrders)
	fmt.Printf("Completed Revenue: $%.2f\n", stats.CompletedRevenue)
	fmt.Printf("Pending Revenue: $%.2f\n", stats.PendingRevenue)
	fmt.Printf("Average Order Value: $%.2f\n", stats.AverageOrderValue)

	fmt.Println("Orders by Status:")
	for _, sc := range stats.StatusBreakdown {
		fmt.Printf("  %s: %d\n", sc.Status, sc.Count)
	}

	if len(stats.TopCustomers) > 0 {
		fmt.Println("Top Customers:")
		for _, tc := range stats.TopCustomers {
			fmt.Printf("  %s - %d order(s), $%.2f\n", tc.CustomerName, tc.OrderCount, tc.TotalSpent)
		}
	}
}
