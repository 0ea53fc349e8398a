package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/models"
	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/store"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage warehouse tasks",
	Long:  `Create, edit, filter and audit warehouse tasks.`,
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	RunE:    runTaskList,
}

var taskShowCmd = &cobra.Command{
	Use:   "show [task-number]",
	Short: "Show a task in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskShow,
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	RunE:  runTaskAdd,
}

var taskEditCmd = &cobra.Command{
	Use:   "edit [task-number]",
	Short: "Edit a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskEdit,
}

var taskDeleteCmd = &cobra.Command{
	Use:     "delete [task-number]",
	Aliases: []string{"rm"},
	Short:   "Delete a task (archives tasks already sent to a tablet)",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskDelete,
}

var taskSendCmd = &cobra.Command{
	Use:   "send [task-number]",
	Short: "Send a task to the warehouse tablet",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskSend,
}

var taskHistoryCmd = &cobra.Command{
	Use:   "history [task-number]",
	Short: "Show the audit history of a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskHistory,
}

var listFlags struct {
	status   string
	priority string
	period   string
	search   string
	sortBy   string
	desc     bool
	archived bool
}

func init() {
	taskListCmd.Flags().StringVar(&listFlags.status, "status", "", "filter by status")
	taskListCmd.Flags().StringVar(&listFlags.priority, "priority", "", "filter by priority")
	taskListCmd.Flags().StringVar(&listFlags.period, "period", "", "filter by creation period: today|week|month")
	taskListCmd.Flags().StringVar(&listFlags.search, "search", "", "search in title, description and numbers")
	taskListCmd.Flags().StringVar(&listFlags.sortBy, "sort", "", "sort by: number|order|title|priority|status|created|progress")
	taskListCmd.Flags().BoolVar(&listFlags.desc, "desc", false, "sort descending")
	taskListCmd.Flags().BoolVar(&listFlags.archived, "archived", false, "include soft-deleted tasks")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskHistoryCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskSendCmd)
	taskCmd.AddCommand(taskShowCmd)
}

func runTaskList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	opts := store.ListOptions{IncludeDeleted: listFlags.archived}

	criteria := store.FilterCriteria{
		Status:   models.TaskStatus(listFlags.status),
		Priority: models.TaskPriority(listFlags.priority),
		Period:   store.Period(listFlags.period),
		Search:   listFlags.search,
	}
	if criteria != (store.FilterCriteria{}) {
		opts.Criteria = &criteria
	}

	if listFlags.sortBy != "" {
		direction := store.SortAsc
		if listFlags.desc {
			direction = store.SortDesc
		}
		opts.Sort = &store.SortState{Field: store.SortField(listFlags.sortBy), Direction: direction}
	}

	tasks := s.List(opts)
	if len(tasks) == 0 {
		fmt.Println("No tasks. Run 'mes task add' to create one.")
		return nil
	}

	for _, t := range tasks {
		fmt.Printf("  %s  %-11s  %-9s  %3d%%  %s  %s\n",
			t.TaskNumber,
			renderStatus(t.Status),
			t.Priority,
			t.Progress,
			styleLabel.Render(t.OrderNumber),
			t.Title,
		)
	}
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	t, err := s.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", styleValue.Render(t.TaskNumber), t.Title)
	fmt.Printf("%s %s\n", styleLabel.Render("Order:"), t.OrderNumber)
	fmt.Printf("%s %s\n", styleLabel.Render("Status:"), renderStatus(t.Status))
	fmt.Printf("%s %s\n", styleLabel.Render("Priority:"), t.Priority)
	fmt.Printf("%s %s\n", styleLabel.Render("Type:"), t.Type)
	fmt.Printf("%s %d%%\n", styleLabel.Render("Progress:"), t.Progress)
	fmt.Printf("%s %s\n", styleLabel.Render("Created:"), t.Created.Local().Format("2006-01-02 15:04"))
	if t.Updated != nil {
		fmt.Printf("%s %s\n", styleLabel.Render("Updated:"), t.Updated.Local().Format("2006-01-02 15:04"))
	}
	if t.SentToTablet {
		fmt.Printf("%s yes\n", styleLabel.Render("On tablet:"))
	}
	if t.Description != "" {
		fmt.Printf("\n%s\n", t.Description)
	}
	if len(t.Positions) > 0 {
		fmt.Printf("\n%s\n", styleLabel.Render("Positions:"))
		for _, p := range t.Positions {
			fmt.Printf("  %-12s %-30s %d/%d\n", p.SKU, p.Name, p.Completed, p.Quantity)
		}
	}
	return nil
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Order number (YYYY/NNN): ")
	orderNumber, _ := reader.ReadString('\n')
	orderNumber = strings.TrimSpace(orderNumber)

	fmt.Print("Title: ")
	title, _ := reader.ReadString('\n')
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}

	fmt.Print("Description (optional): ")
	description, _ := reader.ReadString('\n')
	description = strings.TrimSpace(description)

	fmt.Print("Priority [low/normal/important/urgent] (default: normal): ")
	priority, _ := reader.ReadString('\n')
	priority = strings.TrimSpace(strings.ToLower(priority))

	fmt.Print("Type [picking/shipment/writeoff] (default: picking): ")
	taskType, _ := reader.ReadString('\n')
	taskType = strings.TrimSpace(strings.ToLower(taskType))

	t, err := s.Create(store.Draft{
		OrderNumber: orderNumber,
		Title:       title,
		Description: description,
		Priority:    models.TaskPriority(priority),
		Type:        models.TaskType(taskType),
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n", styleSuccess.Render(fmt.Sprintf("Task %s created.", t.TaskNumber)))
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	t, err := s.Get(args[0])
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	opts := store.UpdateOptions{}

	fmt.Printf("Title [%s]: ", t.Title)
	if title := readLine(reader); title != "" {
		opts.Title = &title
	}

	fmt.Printf("Status [%s]: ", t.Status)
	if statusStr := strings.ToLower(readLine(reader)); statusStr != "" {
		status := models.TaskStatus(statusStr)
		opts.Status = &status
	}

	fmt.Printf("Priority [%s]: ", t.Priority)
	if priorityStr := strings.ToLower(readLine(reader)); priorityStr != "" {
		priority := models.TaskPriority(priorityStr)
		opts.Priority = &priority
	}

	fmt.Print("Comment: ")
	comment := readLine(reader)

	updated, err := s.Update(t.TaskNumber, opts, comment)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n", styleSuccess.Render(fmt.Sprintf("Task %s updated.", updated.TaskNumber)))
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	softDeleted, err := s.Delete(args[0])
	if err != nil {
		return err
	}

	if softDeleted {
		fmt.Printf("%s\n", styleWarning.Render(fmt.Sprintf("Task %s was already on a tablet; archived instead of removed.", args[0])))
		fmt.Println(styleHint.Render("Use 'mes task list --archived' to see archived tasks."))
	} else {
		fmt.Printf("%s\n", styleSuccess.Render(fmt.Sprintf("Task %s deleted.", args[0])))
	}
	return nil
}

func runTaskSend(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	t, err := s.SendToTablet(args[0])
	if err != nil {
		var alreadySent *store.AlreadySentError
		if errors.As(err, &alreadySent) {
			fmt.Printf("%s\n", styleWarning.Render(err.Error()))
			return nil
		}
		return err
	}

	fmt.Printf("%s\n", styleSuccess.Render(fmt.Sprintf("Task %s sent to tablet.", t.TaskNumber)))
	return nil
}

func runTaskHistory(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	t, err := s.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("History of %s:\n", t.TaskNumber)
	for _, e := range t.History {
		line := fmt.Sprintf("  %s  %-10s %s",
			e.Timestamp.Local().Format("2006-01-02 15:04"), e.User, e.Action)
		if e.Kind != models.AuditKindFreeform {
			line += fmt.Sprintf("  %s: %q -> %q", e.Field, e.OldValue, e.NewValue)
		}
		if e.Comment != "" {
			line += "  " + styleHint.Render("("+e.Comment+")")
		}
		fmt.Println(line)
	}
	return nil
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
