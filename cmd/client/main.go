// Command client is the terminal client for the workout tracker: browse the
// exercise catalog, list workouts, start a session from a template, record
// set results, and replay completions that were queued while offline.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dialed/fitness-app/internal/api"
	"dialed/fitness-app/internal/client"
	"dialed/fitness-app/internal/client/queue"
	"dialed/fitness-app/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	apiClient := client.New(cfg.Client.BaseURL)

	queuePath := cfg.Client.QueuePath
	if !filepath.IsAbs(queuePath) {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		queuePath = filepath.Join(home, "."+filepath.Clean(queuePath))
	}

	openQueue := func() (*queue.Queue, error) {
		return queue.Open(queuePath)
	}

	rootCmd := newRootCmd(apiClient, openQueue)
	return rootCmd.Execute()
}

func newRootCmd(apiClient *client.Client, openQueue func() (*queue.Queue, error)) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dialed",
		Short:        "Workout tracker client",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newExercisesCmd(apiClient),
		newWorkoutsCmd(apiClient),
		newStartCmd(apiClient),
		newLogCmd(apiClient),
		newCompleteCmd(apiClient, openQueue),
		newSyncCmd(apiClient, openQueue),
	)
	return rootCmd
}

func newExercisesCmd(apiClient *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "exercises",
		Short: "List the exercise catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			exercises, err := apiClient.GetExercises(cmd.Context())
			if err != nil {
				return err
			}
			for _, ex := range exercises {
				fmt.Printf("%-24s %-20s %s\n", ex.ID, ex.PrimaryMuscle, ex.Name)
			}
			return nil
		},
	}
}

func newWorkoutsCmd(apiClient *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "workouts [id]",
		Short: "List workouts, or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				workout, err := apiClient.GetWorkout(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printWorkout(workout)
				return nil
			}

			workouts, err := apiClient.GetWorkouts(cmd.Context())
			if err != nil {
				return err
			}
			for _, w := range workouts {
				kind := "session"
				if w.IsTemplate {
					kind = "template"
				}
				fmt.Printf("%s  %-8s %-24s %s\n", w.ID, kind, w.Name, w.CreatedAt.Local().Format(time.DateTime))
			}
			return nil
		},
	}
}

func newStartCmd(apiClient *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "start <template-id>",
		Short: "Start a workout session from a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workout, err := apiClient.StartWorkout(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Started %q as workout %s\n", workout.Name, workout.ID)
			printWorkout(workout)
			return nil
		},
	}
}

func newLogCmd(apiClient *client.Client) *cobra.Command {
	var (
		weight float64
		reps   int
		done   bool
	)
	cmd := &cobra.Command{
		Use:   "log <workout-id> <exercise-id> <set-index>",
		Short: "Record weight/reps/completion for one set",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			setIndex, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("set index must be a number: %w", err)
			}

			patch := client.SetPatch{}
			if cmd.Flags().Changed("weight") {
				patch["weight"] = weight
			}
			if cmd.Flags().Changed("reps") {
				patch["reps"] = reps
			}
			if cmd.Flags().Changed("done") {
				patch["completed"] = done
			}
			if len(patch) == 0 {
				return fmt.Errorf("nothing to record; pass --weight, --reps or --done")
			}

			exercise, err := apiClient.UpdateExerciseSet(cmd.Context(), args[0], args[1], setIndex, patch)
			if err != nil {
				return err
			}
			set := exercise.Sets[setIndex]
			fmt.Printf("%s set %d: weight=%s reps=%s completed=%v\n",
				exercise.Name, setIndex+1, formatFloat(set.Weight), formatInt(set.Reps), set.Completed)
			return nil
		},
	}
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight used for the set")
	cmd.Flags().IntVar(&reps, "reps", 0, "reps performed")
	cmd.Flags().BoolVar(&done, "done", false, "mark the set completed")
	return cmd
}

func newCompleteCmd(apiClient *client.Client, openQueue func() (*queue.Queue, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <workout-id>",
		Short: "Finish a session: push all set results and record the completed workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := openQueue()
			if err != nil {
				return err
			}
			defer q.Close()

			session, err := client.ResumeSession(cmd.Context(), apiClient, q, args[0])
			if err != nil {
				return err
			}
			state, err := session.Complete(cmd.Context())
			if err != nil {
				return err
			}
			if state == client.StateOfflineQueued {
				fmt.Println(session.SyncWarning())
				return nil
			}
			fmt.Println("Workout completed.")
			return nil
		},
	}
}

func newSyncCmd(apiClient *client.Client, openQueue func() (*queue.Queue, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Replay completions that were queued while offline",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := openQueue()
			if err != nil {
				return err
			}
			defer q.Close()

			synced, err := client.SyncPending(cmd.Context(), apiClient, q)
			if synced > 0 {
				fmt.Printf("Synced %d pending workout(s).\n", synced)
			}
			if err != nil {
				return err
			}
			if synced == 0 {
				fmt.Println("Nothing to sync.")
			}
			return nil
		},
	}
}

func printWorkout(workout *api.WorkoutResponse) {
	for i, ex := range workout.Exercises {
		fmt.Printf("%2d. %s (%s)\n", i+1, ex.Name, ex.ID)
		for j, set := range ex.Sets {
			mark := " "
			if set.Completed {
				mark = "x"
			}
			fmt.Printf("     [%s] set %d  weight=%s reps=%s\n", mark, j+1, formatFloat(set.Weight), formatInt(set.Reps))
		}
	}
}

func formatFloat(v *float64) string {
	if v == nil {
		return "—"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return "—"
	}
	return strconv.Itoa(*v)
}
