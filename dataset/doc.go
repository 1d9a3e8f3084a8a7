// Package dataset persists generated tasks.
//
// Every task becomes one directory:
//
//	<root>/<domain>_task/<task_id>/
//	    first_frame.png
//	    final_frame.png
//	    prompt.txt
//	    ground_truth.<mp4|avi>   (only when a video was produced)
//
// A task directory is assembled under a hidden staging name and renamed
// into place, so readers never observe a partial task. An optional SQLite
// index records every written task and the run that produced it.
package dataset
