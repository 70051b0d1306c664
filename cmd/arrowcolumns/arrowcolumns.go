// Example: fill bound column buffers block by block, as a driver does on
// SQLFetch with a row array size, and convert each block to an arrow record on
// a pool of workers.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sync"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	sf "github.com/odbcfield/odbcfield"
	"github.com/odbcfield/odbcfield/arrowcolumns"
)

type sampleRecord struct {
	blockID  int
	workerID int
	number   int64
	string   string
}

func (s sampleRecord) String() string {
	return fmt.Sprintf("blockID: %v, workerID: %v, number: %v, string: %v", s.blockID, s.workerID, s.number, s.string)
}

func main() {
	rowCount := flag.Int("rows", 3000, "total number of rows")
	blockSize := flag.Int("block", 1000, "rows per fetch block")
	maxWorkers := flag.Int("workers", 4, "number of conversion workers")
	if !flag.Parsed() {
		flag.Parse()
	}

	reg := sf.NewRegistry(nil)
	info := []sf.ColumnInfo{
		{Name: "SEQ", SQLType: sf.SQLBigInt},
		{Name: "LABEL", SQLType: sf.SQLVarChar, Size: 32, Nullable: true},
	}
	ctx := arrowcolumns.WithUtf8Validation(context.Background())

	// each block gets its own buffers so blocks can be converted concurrently
	blocks := (*rowCount + *blockSize - 1) / *blockSize
	columnsPerBlock := make([][]arrowcolumns.Column, blocks)
	rowsPerBlock := make([]int, blocks)
	for blockID := range columnsPerBlock {
		cols, err := arrowcolumns.NewColumns(reg, info, *blockSize)
		if err != nil {
			log.Fatalf("failed to bind columns. err: %v", err)
		}
		rows := min(*blockSize, *rowCount-blockID**blockSize)
		if err = fetchBlock(cols, blockID**blockSize, rows); err != nil {
			log.Fatalf("failed to fill block %v. err: %v", blockID, err)
		}
		columnsPerBlock[blockID] = cols
		rowsPerBlock[blockID] = rows
	}

	blockIDs := make(chan int, 1)
	sampleRecordsPerBlock := make([][]sampleRecord, blocks)
	var waitGroup sync.WaitGroup
	for workerID := 0; workerID < *maxWorkers; workerID++ {
		waitGroup.Add(1)
		go func(waitGroup *sync.WaitGroup, blockIDs chan int, workerID int) {
			defer waitGroup.Done()

			for blockID := range blockIDs {
				record, err := arrowcolumns.NewRecord(ctx, columnsPerBlock[blockID], rowsPerBlock[blockID], memory.DefaultAllocator)
				if err != nil {
					log.Fatalf("Error while converting block %v: %v", blockID, err)
				}
				sampleRecordsPerBlock[blockID] = convertFromColumnsToRows(record, blockID, workerID)
				record.Release()
			}
		}(&waitGroup, blockIDs, workerID)
	}

	for blockID := 0; blockID < blocks; blockID++ {
		blockIDs <- blockID
	}
	close(blockIDs)
	waitGroup.Wait()

	for _, blockSampleRecords := range sampleRecordsPerBlock {
		for _, sampleRecord := range blockSampleRecords {
			fmt.Println(sampleRecord)
		}
	}
	for blockID, rows := range rowsPerBlock {
		fmt.Printf("BlockId: %v, number of records: %v\n", blockID, rows)
	}
}

// fetchBlock writes rows generated rows into the column buffers, starting at sequence number first.
func fetchBlock(cols []arrowcolumns.Column, first, rows int) error {
	seq := make([]sf.Field, rows)
	labels := make([]sf.Field, rows)
	for i := range seq {
		seq[i] = sf.NewInteger(int64(first + i))
		if (first+i)%10 == 0 {
			labels[i] = sf.Null()
			continue
		}
		labels[i] = sf.NewText(fmt.Sprintf("example %v", (first+i)*2))
	}
	if err := sf.WriteColumn(cols[0].Description, cols[0].Buffer, seq); err != nil {
		return err
	}
	return sf.WriteColumn(cols[1].Description, cols[1].Buffer, labels)
}

func convertFromColumnsToRows(record arrow.Record, blockID, workerID int) []sampleRecord {
	numbers := record.Column(0).(*array.Int64)
	labels := record.Column(1).(*array.String)
	sampleRecords := make([]sampleRecord, record.NumRows())
	for rowID := range sampleRecords {
		sampleRecords[rowID] = sampleRecord{
			blockID:  blockID,
			workerID: workerID,
			number:   numbers.Value(rowID),
			string:   labels.Value(rowID),
		}
	}
	return sampleRecords
}
